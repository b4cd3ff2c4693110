// Package stats defines probability distribution schemas used for priors and
// initial guess sampling. Distributions serialize with a "distribution" tag
// rather than the "type" tag other schema types carry.
package stats

import "github.com/ionworks/ionworks-schema/schema"

// Normal is a univariate normal distribution.
type Normal struct {
	Mean float64
	Std  float64
}

func (n Normal) Config() schema.Config {
	return schema.Config{"mean": n.Mean, "std": n.Std, "distribution": "Normal"}
}

// LogNormal is a univariate lognormal distribution.
type LogNormal struct {
	Mean float64
	Std  float64
}

func (l LogNormal) Config() schema.Config {
	return schema.Config{"mean": l.Mean, "std": l.Std, "distribution": "LogNormal"}
}

// MultivariateNormal is a multivariate normal distribution.
type MultivariateNormal struct {
	Mean []float64
	Cov  [][]float64
}

func (m MultivariateNormal) Config() schema.Config {
	return schema.Config{
		"mean":         schema.Value(m.Mean),
		"cov":          schema.Value(m.Cov),
		"distribution": "MultivariateNormal",
	}
}

// MultivariateLogNormal is a multivariate lognormal distribution.
type MultivariateLogNormal struct {
	Mean []float64
	Cov  [][]float64
}

func (m MultivariateLogNormal) Config() schema.Config {
	return schema.Config{
		"mean":         schema.Value(m.Mean),
		"cov":          schema.Value(m.Cov),
		"distribution": "MultivariateLogNormal",
	}
}

// Dirichlet is a Dirichlet distribution with concentration parameters Alpha.
type Dirichlet struct {
	Alpha []float64
}

func (d Dirichlet) Config() schema.Config {
	return schema.Config{"alpha": schema.Value(d.Alpha), "distribution": "Dirichlet"}
}

// PointMass is a constant-valued distribution.
type PointMass struct {
	Value float64
}

func (p PointMass) Config() schema.Config {
	return schema.Config{"value": p.Value, "distribution": "PointMass"}
}

// Uniform is a uniform distribution on [Lower, Upper].
type Uniform struct {
	Lower float64
	Upper float64
}

func (u Uniform) Config() schema.Config {
	return schema.Config{"lb": u.Lower, "ub": u.Upper, "distribution": "Uniform"}
}
