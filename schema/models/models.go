// Package models defines the MSMR model schemas referenced by objectives.
package models

import "github.com/ionworks/ionworks-schema/schema"

// MSMRHalfCellModel is the multi-species multi-reaction model for one
// electrode. Options include "species format" ("Qj" or "Xj"), "direction"
// and "particle phases".
type MSMRHalfCellModel struct {
	Electrode string
	Options   map[string]any
}

// NewMSMRHalfCellModel returns a half-cell MSMR model for the electrode.
func NewMSMRHalfCellModel(electrode string) *MSMRHalfCellModel {
	return &MSMRHalfCellModel{Electrode: electrode}
}

func (m *MSMRHalfCellModel) Config() schema.Config {
	cfg := schema.Config{"type": "MSMRHalfCellModel", "electrode": m.Electrode}
	schema.Put(cfg, "options", m.Options)
	return cfg
}

// MSMRFullCellModel combines two half-cell MSMR models into a full cell.
type MSMRFullCellModel struct {
	NegativeElectrodeModel *MSMRHalfCellModel
	PositiveElectrodeModel *MSMRHalfCellModel
	Options                map[string]any
}

// NewMSMRFullCellModel returns a full-cell MSMR model over the two
// electrode models.
func NewMSMRFullCellModel(negative, positive *MSMRHalfCellModel) *MSMRFullCellModel {
	return &MSMRFullCellModel{NegativeElectrodeModel: negative, PositiveElectrodeModel: positive}
}

func (m *MSMRFullCellModel) Config() schema.Config {
	cfg := schema.Config{"type": "MSMRFullCellModel"}
	schema.Put(cfg, "negative_electrode_model", m.NegativeElectrodeModel)
	schema.Put(cfg, "positive_electrode_model", m.PositiveElectrodeModel)
	schema.Put(cfg, "options", m.Options)
	return cfg
}
