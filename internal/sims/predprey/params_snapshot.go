package predprey

import (
	"strconv"

	"predprey/internal/core"
)

// Parameters describes the world's settings and live counts for info panels.
func (w *World) Parameters() core.ParameterSnapshot {
	p := w.cfg.Params
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "State",
			Params: []core.Parameter{
				intParam("generation", "Generation", w.generation),
				intParam("prey", "Prey", w.stats.Prey),
				intParam("predators", "Predators", w.stats.Predators),
			},
		},
		{
			Name: "World",
			Params: []core.Parameter{
				intParam("w", "Width", w.w),
				intParam("h", "Height", w.h),
				intParam("population", "Population", p.Population),
				intParam("radius", "Radius", p.Radius),
				intParam("cluster_size", "Cluster size", p.ClusterSize),
				floatParam("cluster_density", "Cluster density", p.ClusterDensity),
				floatParam("predator_rate", "Predator rate", p.PredatorRate),
			},
		},
		{
			Name: "Rules",
			Params: []core.Parameter{
				intParam("age", "Age", p.MaxAge),
				floatParam("mutation", "Mutation", p.Mutation),
				intParam("reproduction", "Reproduction", p.Reproduction),
				intParam("overpopulation", "Overpopulation", p.Overpopulation),
				intParam("underpopulation", "Underpopulation", p.Underpopulation),
				intParam("survivability", "Survival", p.Survivability),
				intParam("resistance", "Resistance", p.Resistance),
				intParam("aging_rate", "Aging rate", p.AgingRate),
			},
		},
	}}
}

func intParam(key, label string, v int) core.Parameter {
	return core.Parameter{Key: key, Label: label, Type: core.ParamTypeInt, Value: strconv.Itoa(v)}
}

func floatParam(key, label string, v float64) core.Parameter {
	return core.Parameter{Key: key, Label: label, Type: core.ParamTypeFloat, Value: strconv.FormatFloat(v, 'g', -1, 64)}
}
