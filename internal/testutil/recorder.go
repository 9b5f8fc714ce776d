package testutil

import (
	"fmt"
	"strconv"

	"github.com/conn-castle/click-backend/internal/pk"
)

// Recorder is a backend.Reporter that records every call as a compact string.
//
// The formats are:
//
//	progress:<percent>
//	status:<status>
//	allow-cancel:<bool>
//	package:<info>:<package id>
//	error:<kind>:<message>
//	finished
type Recorder struct {
	Events []string

	// FailOn makes the first call whose event has this prefix return Err.
	FailOn string
	Err    error
}

// ReportProgress records a progress event.
func (r *Recorder) ReportProgress(percent int) error {
	return r.record("progress:" + strconv.Itoa(percent))
}

// ReportStatus records a status event.
func (r *Recorder) ReportStatus(status pk.Status) error {
	return r.record("status:" + string(status))
}

// SetAllowCancel records an allow-cancel event.
func (r *Recorder) SetAllowCancel(allow bool) error {
	return r.record("allow-cancel:" + strconv.FormatBool(allow))
}

// ReportPackage records a package event.
func (r *Recorder) ReportPackage(id pk.PackageID, info pk.Info, _ string) error {
	return r.record(fmt.Sprintf("package:%s:%s", info, id))
}

// ReportError records an error event.
func (r *Recorder) ReportError(kind pk.ErrorKind, message string) error {
	return r.record(fmt.Sprintf("error:%s:%s", kind, message))
}

// Finished records a finished event.
func (r *Recorder) Finished() error {
	return r.record("finished")
}

func (r *Recorder) record(event string) error {
	if r.FailOn != "" && len(event) >= len(r.FailOn) && event[:len(r.FailOn)] == r.FailOn {
		r.FailOn = ""
		return r.Err
	}
	r.Events = append(r.Events, event)
	return nil
}
