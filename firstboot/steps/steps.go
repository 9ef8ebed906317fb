// Package steps holds the named units of installation work and the
// runner that executes them, consulting the ledger so an interrupted
// run resumes where it stopped.
package steps

import (
	"context"
	"fmt"

	"github.com/hashicorp/go-multierror"
	log "github.com/sirupsen/logrus"

	cm "github.com/m-217/firstboot/firstboot/commandmanager"
	"github.com/m-217/firstboot/firstboot/distro"
	"github.com/m-217/firstboot/firstboot/filemanager"
	"github.com/m-217/firstboot/firstboot/installer"
	"github.com/m-217/firstboot/firstboot/ledger"
	"github.com/m-217/firstboot/firstboot/servicemanager"
)

// Mode selects between the full and the trimmed-down package sets.
type Mode string

const (
	ModeDefault Mode = "default"
	ModeMinimal Mode = "minimal"
)

// Env carries everything a step may touch. It is built once and passed
// by reference; steps hold no global state.
type Env struct {
	Distro    distro.Info
	Mode      Mode
	Commands  cm.CommandManager
	Installer *installer.Installer
	Services  servicemanager.ServiceManager
	Files     filemanager.FileManager

	// Report accumulates per-package results across steps for the final
	// summary.
	Report installer.Report
}

// Step is a named, idempotent unit of installation work. A step that
// fails stays unrecorded and is re-attempted on the next run.
type Step struct {
	Name string
	Desc string
	Run  func(ctx context.Context, env *Env) error
}

// Outcome summarizes one runner pass.
type Outcome struct {
	Ran     []string
	Skipped []string
	Failed  []string
	Err     error
}

// Runner executes steps in order, skipping the ones the ledger already
// records and recording each success.
type Runner struct {
	Ledger *ledger.Ledger
	Steps  []Step
}

// Run executes every step. Step failures are collected, never
// propagated mid-run; a ledger write failure only means the step will
// be re-run on a future resume.
func (r *Runner) Run(ctx context.Context, env *Env) Outcome {
	var out Outcome
	var errs *multierror.Error

	for _, step := range r.Steps {
		if r.Ledger.IsComplete(step.Name) {
			log.WithField("step", step.Name).Info("Step already complete, skipping")
			out.Skipped = append(out.Skipped, step.Name)
			continue
		}

		log.WithField("step", step.Name).Info(step.Desc)
		if err := step.Run(ctx, env); err != nil {
			log.WithError(err).WithField("step", step.Name).Error("Step failed")
			out.Failed = append(out.Failed, step.Name)
			errs = multierror.Append(errs, fmt.Errorf("step %s: %w", step.Name, err))
			continue
		}

		if err := r.Ledger.MarkComplete(step.Name); err != nil {
			log.WithError(err).WithField("step", step.Name).
				Warn("Could not record step completion, it will re-run on resume")
		}
		out.Ran = append(out.Ran, step.Name)
	}

	out.Err = errs.ErrorOrNil()
	return out
}
