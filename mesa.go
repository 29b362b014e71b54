// Package mesa is the entry point of the mesa agent-based modeling
// framework: it re-exports the core building blocks and publishes the
// package metadata. Most applications interact with the framework by:
//  1. Embedding mesa.Model in their model type and mesa/agent.Base in their
//     agent types
//  2. Attaching a scheduler from mesa/time and optionally a space from
//     mesa/space
//  3. Driving the run with mesa/runner (single runs) or mesa/batch
//     (parameter sweeps), collecting series with a DataCollector
//
// The facade keeps the dependency direction explicit: it forwards to the
// model, core, datacollection, time, space and visualization packages.
// Import order is deterministic and a defect in any collaborator surfaces
// at build time; there is no partial-availability mode.
package mesa

import (
	"github.com/hupe1980/mesa/core"
	"github.com/hupe1980/mesa/datacollection"
	"github.com/hupe1980/mesa/model"
	"github.com/hupe1980/mesa/space"
	mesatime "github.com/hupe1980/mesa/time"
	"github.com/hupe1980/mesa/visualization"
)

// Model is the embeddable base for user-defined models. It carries the run
// id, the seeded random source, the scheduler reference and the running
// flag.
type Model = model.Base

// Agent is the behavior contract every simulation agent satisfies.
type Agent = core.Agent

// DataCollector gathers model and agent time series during a run.
type DataCollector = datacollection.DataCollector

// RandomActivation is the default scheduler for most models: one shuffled
// pass over all agents per step. The other activation regimes live in the
// time subpackage.
type RandomActivation = mesatime.RandomActivation

// Grid is the single-occupancy discrete space. MultiGrid and
// ContinuousSpace live in the space subpackage.
type Grid = space.Grid

// TextVisualization renders registered elements to a writer after each
// step. The individual elements live in the visualization subpackage.
type TextVisualization = visualization.TextVisualization

// NewModel constructs a model base with a fresh run id and a seeded random
// source. See model.Options for overrides.
func NewModel(optFns ...func(o *model.Options)) *Model {
	return model.NewBase(optFns...)
}

// NewDataCollector constructs a DataCollector. See datacollection.Options
// for the reporter and table configuration.
func NewDataCollector(optFns ...func(o *datacollection.Options)) *DataCollector {
	return datacollection.New(optFns...)
}
