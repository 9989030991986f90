package web

import (
	"bytes"
	"io"
	"math"
	"net/http"
	"strconv"
	"strings"

	"github.com/bytedance/sonic"
	"github.com/cockroachdb/errors"
	"github.com/go-chi/chi/v5"
)

const maxBodyBytes = 100 << 10

var errInvalidJerseyNumber = errors.New("jerseyNumber must be an integer")

// jerseyNumber accepts a JSON number or a numeric string, matching the
// coercion an INTEGER column applies to text that looks like a number.
type jerseyNumber int64

func (j *jerseyNumber) UnmarshalJSON(data []byte) error {
	raw := strings.TrimSpace(string(data))
	if raw == "null" {
		return nil
	}
	if unquoted, err := strconv.Unquote(raw); err == nil {
		raw = strings.TrimSpace(unquoted)
	}
	if n, err := strconv.ParseInt(raw, 10, 64); err == nil {
		*j = jerseyNumber(n)
		return nil
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil || f != math.Trunc(f) || math.IsInf(f, 0) || f >= math.MaxInt64 || f < math.MinInt64 {
		return errors.Wrapf(errInvalidJerseyNumber, "got %s", string(data))
	}
	*j = jerseyNumber(int64(f))
	return nil
}

// decodePlayerRequest reads a create/update body. An empty body decodes to
// a request with every field absent; a literal null is rejected.
func (s *Server) decodePlayerRequest(r *http.Request) (playerRequest, error) {
	var req playerRequest
	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes+1))
	if err != nil {
		return req, errors.Wrap(err, "read body")
	}
	if len(body) > maxBodyBytes {
		return req, errors.New("request body too large")
	}
	if len(bytes.TrimSpace(body)) == 0 {
		return req, s.validatePlayerRequest(r, req)
	}
	if string(bytes.TrimSpace(body)) == "null" {
		return playerRequest{}, errors.New("player body must be a JSON object")
	}
	if err := sonic.Unmarshal(body, &req); err != nil {
		return playerRequest{}, errors.Wrap(err, "decode player body")
	}
	return req, s.validatePlayerRequest(r, req)
}

func (s *Server) validatePlayerRequest(r *http.Request, req playerRequest) error {
	if !s.opts.StrictPayloads {
		return nil
	}
	if err := s.validator.StructCtx(r.Context(), req); err != nil {
		return errors.Wrap(err, "validate player body")
	}
	return nil
}

// playerIDParam parses the {playerID} path segment. ok is false when the
// segment is not an integer, in which case no row can match it.
func playerIDParam(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(strings.TrimSpace(chi.URLParam(r, "playerID")), 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}
