package domain_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/aretw0/medcalc/pkg/domain"
	"github.com/stretchr/testify/assert"
)

func TestErrorTaxonomy(t *testing.T) {
	notFound := &domain.NotFoundError{Slug: "nope"}
	assert.ErrorIs(t, notFound, domain.ErrCalculatorNotFound)
	assert.Contains(t, notFound.Error(), "nope")
	assert.True(t, domain.IsClientError(notFound))

	missing := &domain.MissingInputError{Field: "age"}
	exec := &domain.ExecutionError{Slug: "psi", Err: fmt.Errorf("scoring: %w", missing)}
	assert.ErrorIs(t, exec, domain.ErrExecution)
	assert.ErrorIs(t, exec, domain.ErrMissingInput)
	assert.True(t, domain.IsClientError(exec))

	var target *domain.MissingInputError
	assert.True(t, errors.As(exec, &target))
	assert.Equal(t, "age", target.Field)

	plain := &domain.ExecutionError{Slug: "psi", Err: errors.New("division by zero")}
	assert.False(t, domain.IsClientError(plain))

	res := &domain.ResolutionError{Module: "calc.x", Function: "f", Err: domain.ErrFunctionNotFound}
	assert.ErrorIs(t, res, domain.ErrFunctionNotFound)
	assert.NotErrorIs(t, res, domain.ErrCalculatorNotFound)
	assert.Contains(t, res.Error(), "calc.x")

	cv := &domain.ContractViolationError{Slug: "qtc", Got: "[]interface {}"}
	assert.ErrorIs(t, cv, domain.ErrContractViolation)
	assert.Contains(t, cv.Error(), "qtc")
}
