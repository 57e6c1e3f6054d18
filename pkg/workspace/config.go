package workspace

import (
	stderrors "errors"
	"strings"

	"github.com/frainlabs/frain/pkg/errors"
)

// Config holds the credentials a workspace is created with. All three fields
// must be version 4 UUIDs.
type Config struct {
	WorkspaceID string `json:"workspaceId"`
	APIKey      string `json:"apiKey"`
	APISecret   string `json:"apiSecret"`
}

// Validate checks every field and reports all failures in one
// configuration error.
func (c Config) Validate() error {
	var errs []error
	for _, f := range []struct{ name, value string }{
		{"workspaceId", c.WorkspaceID},
		{"apiKey", c.APIKey},
		{"apiSecret", c.APISecret},
	} {
		if err := errors.ValidateUUIDv4(f.name, f.value); err != nil {
			errs = append(errs, err)
		}
	}
	if len(errs) == 0 {
		return nil
	}

	msgs := make([]string, len(errs))
	for i, err := range errs {
		msgs[i] = errors.UserMessage(err)
	}
	return errors.Wrap(errors.ErrCodeConfiguration, stderrors.Join(errs...),
		"invalid workspace configuration, check your credentials: %s", strings.Join(msgs, "; "))
}
