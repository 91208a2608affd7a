package services

import (
	"fmt"
	"strings"

	"labeling/internal/core/domain/model/masterlabel"
	"labeling/internal/core/domain/model/volume"
)

// LinkError reports a rejected link call with the identities of every volume
// that would violate a consolidation rule. Linking is all-or-nothing per
// call: one offending volume rejects the whole batch.
type LinkError struct {
	MasterLabelCode string
	OffendingCodes  []string
	Reason          string
}

// Error implements the error interface.
func (e *LinkError) Error() string {
	return fmt.Sprintf("cannot link volumes to master label %s: %s: %s",
		e.MasterLabelCode, e.Reason, strings.Join(e.OffendingCodes, ", "))
}

// MasterLabelLinker is a domain service that consolidates volumes under a
// master label and reverses that consolidation.
//
// Business rules:
//   - The master label must not be in a terminal state
//   - A volume in a terminal state cannot be consolidated
//   - A pallet rejects volumes already owned by a different master label
//   - A call either links every requested volume or none of them
//   - Unlinked volumes return to the generated state with no print history
type MasterLabelLinker struct{}

// NewMasterLabelLinker creates a new MasterLabelLinker instance.
func NewMasterLabelLinker() MasterLabelLinker {
	return MasterLabelLinker{}
}

// Link consolidates the given volumes under the master label. On success
// every volume carries the master's back-reference and its consolidated
// status, and the master's linked set holds each volume exactly once. On
// failure nothing is mutated and the returned *LinkError names every
// offending volume.
func (l MasterLabelLinker) Link(master *masterlabel.MasterLabel, volumes []*volume.Volume) error {
	if err := master.Validate(); err != nil {
		return err
	}
	if master.Status().IsTerminal() {
		return masterlabel.ErrMasterLabelIsTerminal
	}

	var offending []string
	var reason string

	for _, v := range volumes {
		if err := v.Validate(); err != nil {
			return err
		}

		if owner := v.MasterLabelCode(); owner != nil && *owner != master.Code() {
			offending = append(offending, v.Code().String())
			reason = "volumes already belong to another master label"
			continue
		}

		if v.Status().IsTerminal() && v.Status() != volume.Consolidated {
			offending = append(offending, v.Code().String())
			reason = "volumes are in a terminal state"
		}
	}

	if len(offending) > 0 {
		return &LinkError{
			MasterLabelCode: master.Code(),
			OffendingCodes:  offending,
			Reason:          reason,
		}
	}

	for _, v := range volumes {
		if err := v.AttachToMaster(master.Code()); err != nil {
			return err
		}
		if err := master.Link(v.Code()); err != nil {
			return err
		}
	}

	return nil
}

// Unlink releases the given volumes from the master label. Volumes return to
// the generated state: a release is a pre-print planning move and any prior
// print history is not restored.
func (l MasterLabelLinker) Unlink(master *masterlabel.MasterLabel, volumes []*volume.Volume) error {
	if err := master.Validate(); err != nil {
		return err
	}

	for _, v := range volumes {
		if err := master.Unlink(v.Code()); err != nil {
			return err
		}
		v.ReleaseFromMaster()
	}

	return nil
}
