package domain

import (
	"context"
	"time"
)

// Outcome classifies how a calculator run ended.
type Outcome string

const (
	OutcomeOK                Outcome = "ok"
	OutcomeMissingInput      Outcome = "missing_input"
	OutcomeResolutionFailure Outcome = "resolution_failure"
	OutcomeContractViolation Outcome = "contract_violation"
	OutcomeError             Outcome = "error"
)

// ResolveEvent is emitted whenever the dispatcher looks up an implementation.
type ResolveEvent struct {
	Module   string `json:"module"`
	Function string `json:"function"`
	CacheHit bool   `json:"cache_hit"`
	Err      error  `json:"-"`
}

// ExecuteEvent is emitted after every calculator run.
type ExecuteEvent struct {
	Slug     string        `json:"slug"`
	Duration time.Duration `json:"duration"`
	Outcome  Outcome       `json:"outcome"`
	Err      error         `json:"-"`
}

// DispatchHooks defines callbacks for dispatcher observability.
type DispatchHooks struct {
	OnResolve func(context.Context, *ResolveEvent)
	OnExecute func(context.Context, *ExecuteEvent)
}
