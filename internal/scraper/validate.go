package scraper

import "encoding/json"

const statusOK = 200

// validateEnvelope checks the envelope's status fields and required body
// fields, returning the decoded body on success. The three checks run in
// order and each failure is terminal:
//
//  1. original_status and pc_status must both be 200.
//  2. A present-but-empty body (no keys) is an error.
//  3. A body missing both title and a price value is treated as "product
//     unavailable" rather than malformed, with a more actionable message.
func validateEnvelope(env *envelope) (*rawBody, error) {
	if env.OriginalStatus != statusOK || env.PcStatus != statusOK {
		return nil, newError(
			KindAPIError,
			"scraping service reported failure (original_status=%d, pc_status=%d)",
			env.OriginalStatus, env.PcStatus,
		)
	}

	present := len(env.Body) > 0 && string(env.Body) != "null"
	if present {
		var keys map[string]json.RawMessage
		if err := json.Unmarshal(env.Body, &keys); err != nil {
			return nil, newError(KindAPIError, "malformed response body: %v", err)
		}
		if len(keys) == 0 {
			return nil, newError(KindAPIError, "scraping service returned an empty response body")
		}
	}

	body := &rawBody{}
	if present {
		if err := json.Unmarshal(env.Body, body); err != nil {
			return nil, newError(KindAPIError, "malformed response body: %v", err)
		}
	}

	// The price check intentionally treats an explicit 0 the same as absent,
	// matching the service's observed behavior.
	hasPrice := body.Price != nil && body.Price.Value != 0
	if body.Title == "" && !hasPrice {
		return nil, newError(
			KindAPIError,
			"product data unavailable: check that the listing is still active and your API key has remaining quota",
		)
	}

	return body, nil
}
