package engine

import (
	"path/filepath"

	"go.uber.org/zap"

	"csv-refine/internal/dataset"
	"csv-refine/internal/errors"
	"csv-refine/internal/frame"
	"csv-refine/internal/logging"
)

// Refine loads the variant's raw file, coerces every declared column and
// appends the derived columns. The returned frame is ready for export.
func Refine(spec dataset.Spec, source string) (*frame.Frame, error) {
	f, err := frame.Load(source, spec.Columns, spec.HeaderOverride)
	if err != nil {
		return nil, err
	}
	for _, d := range spec.Derived {
		cells := make([]any, f.NumRows())
		for i := range cells {
			cells[i] = d.Fn(f.Row(i))
		}
		if err := f.AddColumn(d.Name, d.Type, cells); err != nil {
			return nil, err
		}
	}
	return f, nil
}

// Export writes a refined frame to outputDir under the variant's output
// file name, creating the directory if needed.
func Export(spec dataset.Spec, f *frame.Frame, outputDir string) error {
	return frame.Write(f, filepath.Join(outputDir, spec.OutputFile))
}

// Transformation carries one variant through a transform, validate,
// export run. Validate and Export require a prior successful Transform.
// A Transformation is created per run and discarded afterwards.
type Transformation struct {
	spec   dataset.Spec
	source string
	frame  *frame.Frame
}

func NewTransformation(spec dataset.Spec, source string) *Transformation {
	return &Transformation{spec: spec, source: source}
}

// Transform reads and refines the source file, keeping the result for
// Validate and Export.
func (t *Transformation) Transform() error {
	f, err := Refine(t.spec, t.source)
	if err != nil {
		return err
	}
	t.frame = f
	return nil
}

// Validate applies the variant's declared checks to the transformed data.
func (t *Transformation) Validate() error {
	if t.frame == nil {
		return errors.New(errors.State, "no data to validate: transform has not run")
	}
	return Validate(t.spec, t.frame)
}

// Export writes the transformed data to the output directory.
func (t *Transformation) Export(outputDir string) error {
	if t.frame == nil {
		return errors.New(errors.State, "no data to export: transform has not run")
	}
	return Export(t.spec, t.frame, outputDir)
}

// Frame returns the transformed data, nil before Transform.
func (t *Transformation) Frame() *frame.Frame {
	return t.frame
}

// Options configures a batch run.
type Options struct {
	InputDir   string
	OutputDir  string
	Validate   bool
	FailFast   bool
	Log        *zap.SugaredLogger
	OnProgress func()
}

// Result is the per-variant report line for a batch run.
type Result struct {
	Dataset string
	Rows    int
	Columns int
	Output  string
	Status  string
	ErrMsg  string
}

// Run refines every given variant independently. A failing variant is
// reported in its result and does not stop the others, unless FailFast
// stops the run at the first failure.
func Run(specs []dataset.Spec, opts Options) []Result {
	log := opts.Log
	if log == nil {
		log = logging.Nop()
	}

	results := make([]Result, 0, len(specs))
	for _, spec := range specs {
		res := runOne(spec, opts, log)
		results = append(results, res)
		if opts.OnProgress != nil {
			opts.OnProgress()
		}
		if opts.FailFast && res.Status != "OK" {
			break
		}
	}
	return results
}

func runOne(spec dataset.Spec, opts Options, log *zap.SugaredLogger) Result {
	res := Result{Dataset: spec.Name, Output: spec.OutputFile}
	source := filepath.Join(opts.InputDir, spec.RawFile)

	t := NewTransformation(spec, source)
	if err := t.Transform(); err != nil {
		log.Errorw("transform failed", "dataset", spec.Name, "source", source, "error", err)
		res.Status = "FAILED"
		res.ErrMsg = err.Error()
		return res
	}

	if opts.Validate {
		if err := t.Validate(); err != nil {
			log.Errorw("validation failed", "dataset", spec.Name, "error", err)
			res.Status = "FAILED"
			res.ErrMsg = err.Error()
			return res
		}
	}

	if err := t.Export(opts.OutputDir); err != nil {
		log.Errorw("export failed", "dataset", spec.Name, "error", err)
		res.Status = "FAILED"
		res.ErrMsg = err.Error()
		return res
	}

	f := t.Frame()
	res.Rows = f.NumRows()
	res.Columns = f.NumCols()
	res.Status = "OK"
	log.Infow("dataset refined",
		"dataset", spec.Name,
		"rows", res.Rows,
		"columns", res.Columns,
		"output", res.Output,
	)
	return res
}
