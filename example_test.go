package medcalc_test

import (
	"context"
	"fmt"
	"log"

	"github.com/aretw0/medcalc"
)

// ExampleService_Run runs a bundled calculator with labelled inputs.
func ExampleService_Run() {
	svc := medcalc.New()

	resp, err := svc.Run(context.Background(), "mean-arterial-pressure-map", map[string]any{
		"Systolic Blood Pressure":  []any{120, "mm hg"},
		"Diastolic Blood Pressure": []any{80, "mm hg"},
	})
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(resp["calculator_name"])
	fmt.Println(resp["answer"])
	// Output:
	// Mean Arterial Pressure (MAP)
	// 93.333
}

// ExampleService_List prints the bundled catalog.
func ExampleService_List() {
	svc := medcalc.New()

	summaries, err := svc.List(context.Background())
	if err != nil {
		log.Fatal(err)
	}
	for _, s := range summaries {
		fmt.Println(s.ID, s.Slug)
	}
	// Output:
	// 5 mean-arterial-pressure-map
	// 6 body-mass-index-bmi
	// 11 qtc-bazett-calculator
	// 29 psi-score-pneumonia-severity-index-for-cap
}
