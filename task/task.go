// Package task binds the hull engine to the four-stage task lifecycle shared by
// every kernel: validate the buffers, load the input, run, and write the
// output.
package task

import (
	"github.com/osuushi/hull/advanced"
	"github.com/osuushi/hull/dbg"
	"github.com/pkg/errors"
)

var (
	// ErrInvalidInput means the caller's buffers can't be used as given. No
	// output is written when it is returned.
	ErrInvalidInput = errors.New("invalid input")
	// ErrCoordinateRange means an input point is outside the range where hull
	// arithmetic is exact (see advanced.MaxCoordinate).
	ErrCoordinateRange = errors.New("coordinate out of range")
	// ErrStageOrder means a lifecycle stage was called out of order.
	ErrStageOrder = errors.New("lifecycle stage out of order")
)

// Task is the lifecycle contract. The wrapper calls the stages in order and
// stops at the first error.
type Task interface {
	Validate() error
	PreProcess() error
	Run() error
	PostProcess() error
}

// Data holds the caller's buffers. Only the first input and first output are
// used by the hull task. Counts are in points, not bytes.
type Data struct {
	Inputs       [][]byte
	InputsCount  []int
	Outputs      [][]byte
	OutputsCount []int

	// SizeNegotiation lets Validate accept an output smaller than the input.
	// The hull size is only known after Run, so PostProcess then fails with
	// ErrInvalidInput if the hull doesn't fit, and HullSize tells the caller how
	// much room to make before trying again.
	SizeNegotiation bool

	// HullSize is set by PostProcess to the number of hull vertices.
	HullSize int
}

// Execute runs every stage of t in order, stopping at the first error.
func Execute(t Task) error {
	stages := []struct {
		name string
		run  func() error
	}{
		{"validate", t.Validate},
		{"pre-process", t.PreProcess},
		{"run", t.Run},
		{"post-process", t.PostProcess},
	}
	for _, stage := range stages {
		if err := stage.run(); err != nil {
			return errors.Wrap(err, stage.name)
		}
	}
	return nil
}

type stage int

const (
	created stage = iota
	validated
	preProcessed
	ran
	postProcessed
)

// HullTask computes the convex hull of the points in the first input buffer and
// writes it, in counterclockwise order from the pivot, to the first output
// buffer.
type HullTask struct {
	data   *Data
	config advanced.Config
	name   string
	stage  stage

	points []advanced.Point
	hull   []advanced.Point
}

func New(data *Data, config advanced.Config) *HullTask {
	return &HullTask{data: data, config: config, name: dbg.NewName()}
}

// Name is a readable name for the task, used in log output.
func (t *HullTask) Name() string {
	return t.name
}

// Hull returns the hull computed by Run.
func (t *HullTask) Hull() []advanced.Point {
	return t.hull
}

// enter checks that the previous stage completed. Stages only advance on
// success, so a failed stage can't be skipped past.
func (t *HullTask) enter(want stage, name string) error {
	if t.stage != want {
		return errors.Wrapf(ErrStageOrder, "%s called in stage %d", name, t.stage)
	}
	advanced.Logger().Debug("task stage", "task", t.name, "stage", name)
	return nil
}

// Validate checks the buffers before anything is read. Unless the data allows
// size negotiation, the output must have room for as many points as the input,
// which is the most a hull can have.
func (t *HullTask) Validate() error {
	if err := t.enter(created, "validate"); err != nil {
		return err
	}
	if err := t.validate(); err != nil {
		return err
	}
	t.stage = validated
	return nil
}

func (t *HullTask) validate() error {
	d := t.data
	if d == nil {
		return errors.Wrap(ErrInvalidInput, "no task data")
	}
	if len(d.Inputs) < 1 || len(d.InputsCount) < 1 {
		return errors.Wrap(ErrInvalidInput, "no input buffer")
	}
	if len(d.Outputs) < 1 || len(d.OutputsCount) < 1 {
		return errors.Wrap(ErrInvalidInput, "no output buffer")
	}

	in, out := d.InputsCount[0], d.OutputsCount[0]
	if in < 0 || out < 0 {
		return errors.Wrapf(ErrInvalidInput, "negative counts (input %d, output %d)", in, out)
	}
	if len(d.Inputs[0]) < in*PointSize {
		return errors.Wrapf(ErrInvalidInput, "input buffer of %d bytes cannot hold %d points", len(d.Inputs[0]), in)
	}
	if len(d.Outputs[0]) < out*PointSize {
		return errors.Wrapf(ErrInvalidInput, "output buffer of %d bytes cannot hold %d points", len(d.Outputs[0]), out)
	}
	if out < in && !d.SizeNegotiation {
		return errors.Wrapf(ErrInvalidInput, "output capacity %d is smaller than input count %d", out, in)
	}
	return nil
}

// PreProcess copies the input buffer into the task's own point slice.
func (t *HullTask) PreProcess() error {
	if err := t.enter(validated, "pre-process"); err != nil {
		return err
	}
	points, err := UnmarshalPoints(t.data.Inputs[0], t.data.InputsCount[0])
	if err != nil {
		return err
	}
	t.points = points
	t.stage = preProcessed
	return nil
}

func (t *HullTask) Run() (err error) {
	if err := t.enter(preProcessed, "run"); err != nil {
		return err
	}
	defer func() {
		if recoveredErr := advanced.HandleHullPanicRecover(recover()); recoveredErr != nil {
			t.hull = nil
			err = recoveredErr
		}
	}()
	t.hull = advanced.ConvexHull(t.points, t.config)
	t.stage = ran
	return nil
}

// PostProcess writes the hull to the output buffer and records its size. If
// the hull doesn't fit, nothing is written.
func (t *HullTask) PostProcess() error {
	if err := t.enter(ran, "post-process"); err != nil {
		return err
	}
	d := t.data
	d.HullSize = len(t.hull)
	if capacity := d.OutputsCount[0]; len(t.hull) > capacity {
		return errors.Wrapf(ErrInvalidInput, "hull has %d vertices but the output holds %d", len(t.hull), capacity)
	}
	if _, err := MarshalPoints(t.hull, d.Outputs[0]); err != nil {
		return err
	}
	t.stage = postProcessed
	return nil
}
