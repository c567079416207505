package gosagemaker

import (
	"fmt"
	"strings"
	"time"
)

// Name length limits imposed by the service.
const (
	MaxTrainingJobNameLen = 63
	MaxTuningJobNameLen   = 32
	MaxAutoMLJobNameLen   = 32
)

// JobName composes a unique job name from a base and the current UTC
// time, formatted base-YYYY-MM-DD-HH-MM-SS-mmm. The base is truncated
// so the whole name fits maxLen.
func JobName(base string, maxLen int) string {
	return JobNameAt(base, time.Now(), maxLen)
}

func JobNameAt(base string, ts time.Time, maxLen int) string {
	ts = ts.UTC()
	suffix := fmt.Sprintf("%s-%03d", ts.Format("2006-01-02-15-04-05"), ts.Nanosecond()/int(time.Millisecond))

	base = strings.Trim(base, "-")
	max := maxLen - len(suffix) - 1
	if len(base) > max {
		base = strings.Trim(base[:max], "-")
	}
	if base == "" {
		return suffix
	}
	return base + "-" + suffix
}

// BaseName derives a job name base from a container image URI by
// stripping the registry and tag, e.g.
// 763104351884.dkr.ecr.us-east-1.amazonaws.com/pytorch-training:2.1.0-gpu-py310
// becomes pytorch-training.
func BaseName(imageURI string) string {
	repo := imageURI
	if i := strings.LastIndex(repo, "/"); i >= 0 {
		repo = repo[i+1:]
	}
	if i := strings.Index(repo, ":"); i >= 0 {
		repo = repo[:i]
	}
	if i := strings.Index(repo, "@"); i >= 0 {
		repo = repo[:i]
	}
	return repo
}
