package pipeline

import (
	"testing"

	"github.com/funvibe/mython/internal/diagnostics"
	"github.com/funvibe/mython/internal/token"
)

type recordingProcessor struct {
	name string
	log  *[]string
	fail bool
}

func (rp *recordingProcessor) Process(ctx *PipelineContext) *PipelineContext {
	*rp.log = append(*rp.log, rp.name)
	if rp.fail {
		ctx.Errors = append(ctx.Errors, diagnostics.NewError("T000", token.Token{}, "stage %s failed", rp.name))
	}
	return ctx
}

func TestStagesRunInOrder(t *testing.T) {
	var log []string
	p := New(
		&recordingProcessor{name: "first", log: &log},
		&recordingProcessor{name: "second", log: &log},
	)
	ctx := p.Run(&PipelineContext{})
	if len(ctx.Errors) != 0 {
		t.Fatalf("unexpected errors: %v", ctx.Errors)
	}
	if len(log) != 2 || log[0] != "first" || log[1] != "second" {
		t.Errorf("stage order = %v", log)
	}
}

func TestFailedStageStopsThePipeline(t *testing.T) {
	var log []string
	p := New(
		&recordingProcessor{name: "first", log: &log, fail: true},
		&recordingProcessor{name: "second", log: &log},
	)
	ctx := p.Run(&PipelineContext{})
	if len(ctx.Errors) != 1 {
		t.Fatalf("expected one error, got %v", ctx.Errors)
	}
	if len(log) != 1 {
		t.Errorf("later stages ran after a failure: %v", log)
	}
}
