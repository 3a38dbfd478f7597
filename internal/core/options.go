package core

import (
	"errors"

	"github.com/mitchellh/mapstructure"
)

// DecodeOptions decodes a host-supplied configuration map into Options.
// Unknown keys and mistyped values are reported as individual findings so
// a driver can surface them all at once.
func DecodeOptions(config map[string]any) (Options, []error) {
	var opts Options
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:      &opts,
		ErrorUnused: true,
	})
	if err != nil {
		return opts, []error{err}
	}

	if err := dec.Decode(config); err != nil {
		var merr *mapstructure.Error
		if errors.As(err, &merr) {
			findings := make([]error, 0, len(merr.Errors))
			for _, msg := range merr.Errors {
				findings = append(findings, errors.New(msg))
			}
			return opts, findings
		}
		return opts, []error{err}
	}

	return opts, nil
}
