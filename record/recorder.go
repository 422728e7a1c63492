// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package record logs network snapshots, one row per recorded step, into an
etable.Table, keeping the observed range of every column.  The table can
be written as CSV at the end of a run, or streamed row by row to a writer
as the run proceeds.
*/
package record

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/c2h5oh/datasize"
	"github.com/emer/etable/etable"
	"github.com/emer/etable/etensor"
	"github.com/emer/etable/minmax"
	"github.com/emer/thalcort/thalcort"
)

// Recorder collects snapshots into a table with a Time and Step column
// followed by one column per recorded variable.
type Recorder struct {
	Vars   []string               `desc:"names of the recorded snapshot variables"`
	Every  int                    `def:"1" min:"1" desc:"record every Every steps"`
	Table  *etable.Table          `view:"no-inline" desc:"the recorded data"`
	Ranges map[string]*minmax.F64 `view:"-" desc:"observed range of each variable column"`

	out  io.Writer
	dlm  etable.Delims
	hdrs bool
}

// NewRecorder returns a recorder of the given snapshot variables,
// or of thalcort.SnapshotVars if none are given.  Every name must be
// known to thalcort.Snapshot.VarByName.
func NewRecorder(vars ...string) (*Recorder, error) {
	if len(vars) == 0 {
		vars = thalcort.SnapshotVars
	}
	var sn thalcort.Snapshot
	for _, nm := range vars {
		if _, err := sn.VarByName(nm); err != nil {
			return nil, fmt.Errorf("record: %w", err)
		}
	}
	rc := &Recorder{Vars: append([]string(nil), vars...), Every: 1}
	rc.ConfigTable()
	return rc, nil
}

// ConfigTable (re)creates an empty table and resets the ranges
func (rc *Recorder) ConfigTable() {
	sch := etable.Schema{
		{"Time", etensor.FLOAT64, nil, nil},
		{"Step", etensor.INT64, nil, nil},
	}
	for _, nm := range rc.Vars {
		sch = append(sch, etable.Column{nm, etensor.FLOAT64, nil, nil})
	}
	rc.Table = &etable.Table{}
	rc.Table.SetMetaData("name", "ThalCortLog")
	rc.Table.SetMetaData("desc", "record of thalamocortical network snapshots")
	rc.Table.SetMetaData("precision", "8")
	rc.Table.SetFromSchema(sch, 0)
	rc.Ranges = make(map[string]*minmax.F64, len(rc.Vars))
	for _, nm := range rc.Vars {
		mm := &minmax.F64{}
		mm.SetInfinity()
		rc.Ranges[nm] = mm
	}
	rc.hdrs = false
}

// SetWriter streams every recorded row to w, with a header line before
// the first one.  A nil w stops streaming.
func (rc *Recorder) SetWriter(w io.Writer, delim etable.Delims) {
	rc.out = w
	rc.dlm = delim
	rc.hdrs = false
}

// Record adds a row for sn if its step is a multiple of Every.
// It returns whether a row was added.
func (rc *Recorder) Record(sn *thalcort.Snapshot) (bool, error) {
	if rc.Every > 1 && sn.Step%rc.Every != 0 {
		return false, nil
	}
	dt := rc.Table
	row := dt.Rows
	dt.SetNumRows(row + 1)
	dt.SetCellFloat("Time", row, sn.Time)
	dt.SetCellFloat("Step", row, float64(sn.Step))
	for _, nm := range rc.Vars {
		val, err := sn.VarByName(nm)
		if err != nil {
			return false, fmt.Errorf("record: %w", err)
		}
		dt.SetCellFloat(nm, row, val)
		rc.Ranges[nm].FitValInRange(val)
	}
	if rc.out != nil {
		if !rc.hdrs {
			if _, err := dt.WriteCSVHeaders(rc.out, rc.dlm); err != nil {
				return true, err
			}
			rc.hdrs = true
		}
		if err := dt.WriteCSVRow(rc.out, row, rc.dlm); err != nil {
			return true, err
		}
	}
	return true, nil
}

// Rows returns the number of recorded rows
func (rc *Recorder) Rows() int {
	return rc.Table.Rows
}

// Value returns the recorded value of variable nm at row
func (rc *Recorder) Value(nm string, row int) float64 {
	return rc.Table.CellFloat(nm, row)
}

// Range returns the observed range of variable nm, nil if not recorded
func (rc *Recorder) Range(nm string) *minmax.F64 {
	return rc.Ranges[nm]
}

// WriteCSV writes the whole table, with headers
func (rc *Recorder) WriteCSV(w io.Writer, delim etable.Delims) error {
	return rc.Table.WriteCSV(w, delim, etable.Headers)
}

// SaveCSV saves the whole table to filename: comma separated if the
// extension is .csv, tab separated otherwise.
func (rc *Recorder) SaveCSV(filename string) error {
	fp, err := os.Create(filename)
	if err != nil {
		log.Println(err)
		return err
	}
	defer fp.Close()
	delim := etable.Tab
	if strings.ToLower(filepath.Ext(filename)) == ".csv" {
		delim = etable.Comma
	}
	return rc.WriteCSV(fp, delim)
}

// MemSize returns the memory taken by the recorded values
func (rc *Recorder) MemSize() datasize.ByteSize {
	return datasize.ByteSize(rc.Table.Rows * (len(rc.Vars) + 2) * 8)
}

// String returns a one line summary plus the range of each variable
func (rc *Recorder) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Recorder: Rows: %d\t Vars: %d\t Mem: %v\n", rc.Rows(), len(rc.Vars), rc.MemSize().HumanReadable())
	for _, nm := range rc.Vars {
		mm := rc.Ranges[nm]
		fmt.Fprintf(&b, "%10s:\t Min: %-12.6g\t Max: %-12.6g\n", nm, mm.Min, mm.Max)
	}
	return b.String()
}
