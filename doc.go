/*
Package medcalc serves a catalog of independently authored clinical calculators
through one request/response contract.

Two metadata documents describe the catalog: a path index (calculator name to
identity and implementation path) and a field-mapping index (identity to
descriptive metadata plus the translation from external field labels to the
parameter names each implementation expects). The service reconciles them into
calculator definitions, indexes them by slug, translates incoming fields,
dispatches to the registered implementation and lets slug-scoped
post-processors add interpretation such as risk classes.

# Usage

	svc := medcalc.New()

	resp, err := svc.Run(ctx, "mean-arterial-pressure-map", map[string]any{
		"Systolic Blood Pressure":  []any{120, "mm hg"},
		"Diastolic Blood Pressure": []any{80, "mm hg"},
	})
	if err != nil {
		if domain.IsClientError(err) {
			// bad request
		}
		return err
	}
	fmt.Println(resp["answer"])

# Extending

Implementations register under the module path and function name found in
the metadata:

	lib := calculators.NewLibrary()
	lib.Register("calculator_implementations.my_score", "my_score_explanation", myScore)

	svc := medcalc.New(
		medcalc.WithSource(file.New("calc_path.json", "name_to_python.json")),
		medcalc.WithResolver(lib),
	)

Post-processors are registered per slug on a postprocess.Pipeline and passed
with WithPostProcessing.
*/
package medcalc
