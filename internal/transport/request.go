package transport

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/chartops/projmap/pkg/errors"
	"github.com/chartops/projmap/pkg/logging"
)

// DecodeResponse decodes a JSON response into the target structure.
// Non-200 responses are surfaced as APIError with the response body as
// the message.
func DecodeResponse(resp *http.Response, endpoint string, target any) error {
	defer func() {
		if err := resp.Body.Close(); err != nil {
			logging.Warn().Err(err).Msg("Failed to close response body")
		}
	}()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return errors.WrapIO("read", "response body", err)
	}

	if resp.StatusCode != http.StatusOK {
		return &errors.APIError{
			Endpoint:   endpoint,
			StatusCode: resp.StatusCode,
			Message:    string(body),
		}
	}

	if err := json.Unmarshal(body, target); err != nil {
		return errors.WrapParse("json", endpoint, err)
	}

	return nil
}
