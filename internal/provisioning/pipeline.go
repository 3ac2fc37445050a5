package provisioning

import (
	"fmt"
	"time"
)

// RunPhases executes all provisioning phases sequentially.
// The pipeline is fail-fast: the first phase error aborts the run and no
// later phase is attempted.
func RunPhases(ctx *Context, phases []Phase) error {
	start := time.Now()
	ctx.Observer.Printf("Starting provisioning with %d phases...", len(phases))

	for i, phase := range phases {
		phaseStart := time.Now()
		name := fmt.Sprintf("%s (%d/%d)", phase.Name(), i+1, len(phases))

		ctx.Observer.Event(Event{Type: EventPhaseStarted, Phase: phase.Name(), Message: "starting"})
		ctx.Observer.Printf("[%s] starting", name)

		if err := phase.Provision(ctx); err != nil {
			ctx.Observer.Event(Event{Type: EventPhaseFailed, Phase: phase.Name(), Message: err.Error()})
			return fmt.Errorf("%s phase failed: %w", phase.Name(), err)
		}

		ctx.Observer.Event(Event{
			Type:    EventPhaseCompleted,
			Phase:   phase.Name(),
			Message: fmt.Sprintf("completed in %v", time.Since(phaseStart).Round(time.Millisecond)),
		})
	}

	ctx.Observer.Printf("Provisioning completed in %v", time.Since(start).Round(time.Millisecond))
	return nil
}

// DefaultPhases returns the full provisioning sequence in dependency order.
// Every phase after the first consumes results recorded by earlier phases,
// so the order is load-bearing.
func DefaultPhases() []Phase {
	return []Phase{
		&RegistryPhase{},
		&ExecutionRolePhase{},
		&ClusterPhase{},
		&NetworkPhase{},
		&SecurityGroupPhase{},
		&LogGroupPhase{},
		&TaskDefinitionPhase{},
		&ServicePhase{},
		&PipelineUserPhase{},
	}
}
