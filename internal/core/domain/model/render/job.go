package render

import (
	"fmt"
	"strings"
	"time"

	"labeling/internal/core/domain/model/masterlabel"
	"labeling/internal/core/domain/model/volume"
	"labeling/internal/pkg/errs"
)

// Fallback token used in artifact names when the invoice carries no access key.
const artifactKeyFallback = "sem_chave"

var ErrJobHasNoLabels = errs.NewValueIsRequiredError("volumes")

// Job describes one render request: the labels to print and the template and
// page geometry to print them with. A job either prints volume labels or a
// single master label covering its linked volumes.
type Job struct {
	volumes []*volume.Volume
	master  *masterlabel.MasterLabel
	format  Format
	style   LayoutStyle
}

// NewJob creates a render job for volume labels.
func NewJob(volumes []*volume.Volume, format Format, style LayoutStyle) (Job, error) {
	if len(volumes) == 0 {
		return Job{}, ErrJobHasNoLabels
	}

	return Job{
		volumes: volumes,
		format:  format,
		style:   style,
	}, nil
}

// NewMasterJob creates a render job for a master label. The volumes slice
// holds the linked volumes whose details the template summarizes; it may be
// empty for a freshly created master label.
func NewMasterJob(master *masterlabel.MasterLabel, linked []*volume.Volume, format Format, style LayoutStyle) (Job, error) {
	if master == nil {
		return Job{}, errs.NewValueIsRequiredError("master")
	}

	return Job{
		volumes: linked,
		master:  master,
		format:  format,
		style:   style,
	}, nil
}

// Volumes returns the labels to render, in page order.
func (j Job) Volumes() []*volume.Volume {
	return j.volumes
}

// Master returns the master label to render, or nil for a volume job.
func (j Job) Master() *masterlabel.MasterLabel {
	return j.master
}

// IsMaster reports whether the job renders a master label.
func (j Job) IsMaster() bool {
	return j.master != nil
}

// Format returns the page geometry.
func (j Job) Format() Format {
	return j.format
}

// Style returns the visual template.
func (j Job) Style() LayoutStyle {
	return j.style
}

// ArtifactName builds the output file name for the job. Volume jobs are named
// after the invoice access key when one is present; master jobs after the
// master label code. The timestamp keeps repeated prints from clobbering
// each other.
func (j Job) ArtifactName(accessKey string, now time.Time) string {
	stamp := now.UnixMilli()

	if j.IsMaster() {
		return fmt.Sprintf("etiqueta_mae_%s_%d.pdf", sanitizeArtifactToken(j.master.Code()), stamp)
	}

	key := sanitizeArtifactToken(accessKey)
	if key == "" {
		key = artifactKeyFallback
	}

	return fmt.Sprintf("etiquetas_%s_%d.pdf", key, stamp)
}

func sanitizeArtifactToken(token string) string {
	token = strings.TrimSpace(token)

	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			return r
		default:
			return '_'
		}
	}, token)
}
