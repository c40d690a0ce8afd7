package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strconv"
	"strings"

	org2html "github.com/alnah/go-org2html"
)

// Output formats accepted by /convert.
const (
	FormatHTML = "html"
	FormatPDF  = "pdf"
)

var errBadRequest = errors.New("bad request")

type pageRequest struct {
	Size        string  `json:"size"`
	Orientation string  `json:"orientation"`
	Margin      float64 `json:"margin"`
	PageNumbers bool    `json:"pageNumbers"`
}

type convertRequest struct {
	Org        string       `json:"org"`
	Standalone bool         `json:"standalone"`
	Title      string       `json:"title"`
	CSS        string       `json:"css"`
	Format     string       `json:"format"`
	Page       *pageRequest `json:"page"`
}

// input maps the request onto a conversion input. Unset page fields take
// their defaults.
func (req *convertRequest) input() org2html.Input {
	in := org2html.Input{
		Org:        req.Org,
		Standalone: req.Standalone,
		Title:      req.Title,
		CSS:        req.CSS,
		PDF:        req.Format == FormatPDF,
	}
	if req.Page != nil {
		page := org2html.DefaultPageSettings()
		if req.Page.Size != "" {
			page.Size = req.Page.Size
		}
		if req.Page.Orientation != "" {
			page.Orientation = req.Page.Orientation
		}
		if req.Page.Margin != 0 {
			page.Margin = req.Page.Margin
		}
		page.PageNumbers = req.Page.PageNumbers
		in.Page = page
	}
	return in
}

func (s *Server) handleConvert(w http.ResponseWriter, r *http.Request) {
	req, err := s.decode(w, r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	switch req.Format {
	case "":
		req.Format = FormatHTML
	case FormatHTML, FormatPDF:
	default:
		s.writeError(w, r, fmt.Errorf("%w: unknown format %q", errBadRequest, req.Format))
		return
	}

	c, err := s.pool.Acquire()
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	defer s.pool.Release(c)

	res, err := c.Convert(r.Context(), req.input())
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	if req.Format == FormatPDF {
		w.Header().Set("Content-Type", "application/pdf")
		w.Write(res.PDF)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(res.HTML)
}

func (s *Server) handleDump(w http.ResponseWriter, r *http.Request) {
	req, err := s.decode(w, r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	out, err := org2html.Dump(req.Org, s.opts.DumpOptions...)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	io.WriteString(w, out+"\n")
}

// decode reads a JSON request, or raw org text with options in the query.
func (s *Server) decode(w http.ResponseWriter, r *http.Request) (*convertRequest, error) {
	r.Body = http.MaxBytesReader(w, r.Body, s.opts.MaxBodyBytes)

	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType == "application/json" {
		var req convertRequest
		dec := json.NewDecoder(r.Body)
		dec.DisallowUnknownFields()
		if err := dec.Decode(&req); err != nil {
			return nil, bodyError(err)
		}
		return &req, nil
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		return nil, bodyError(err)
	}

	q := r.URL.Query()
	req := &convertRequest{
		Org:    string(body),
		Title:  q.Get("title"),
		Format: strings.ToLower(q.Get("format")),
	}
	if req.Standalone, err = queryBool(q.Get("standalone")); err != nil {
		return nil, fmt.Errorf("%w: standalone: %v", errBadRequest, err)
	}

	size, orientation := q.Get("size"), q.Get("orientation")
	margin, numbers := q.Get("margin"), q.Get("pageNumbers")
	if size != "" || orientation != "" || margin != "" || numbers != "" {
		req.Page = &pageRequest{Size: size, Orientation: orientation}
		if margin != "" {
			if req.Page.Margin, err = strconv.ParseFloat(margin, 64); err != nil {
				return nil, fmt.Errorf("%w: margin: %v", errBadRequest, err)
			}
		}
		if req.Page.PageNumbers, err = queryBool(numbers); err != nil {
			return nil, fmt.Errorf("%w: pageNumbers: %v", errBadRequest, err)
		}
	}
	return req, nil
}

func queryBool(v string) (bool, error) {
	if v == "" {
		return false, nil
	}
	return strconv.ParseBool(v)
}

// bodyError keeps *http.MaxBytesError visible to statusFor.
func bodyError(err error) error {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		return err
	}
	return fmt.Errorf("%w: %v", errBadRequest, err)
}

type errorResponse struct {
	Error string `json:"error"`
	Line  int    `json:"line,omitempty"`
}

// statusFor maps conversion errors to HTTP status codes.
func statusFor(err error) int {
	var tooLarge *http.MaxBytesError
	switch {
	case errors.As(err, &tooLarge):
		return http.StatusRequestEntityTooLarge
	case errors.Is(err, errBadRequest),
		errors.Is(err, org2html.ErrInvalidPageSize),
		errors.Is(err, org2html.ErrInvalidOrientation),
		errors.Is(err, org2html.ErrInvalidMargin):
		return http.StatusBadRequest
	case errors.Is(err, org2html.ErrNesting),
		errors.Is(err, org2html.ErrTooDeep):
		return http.StatusUnprocessableEntity
	case errors.Is(err, org2html.ErrPoolClosed),
		errors.Is(err, context.Canceled):
		return http.StatusServiceUnavailable
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFor(err)
	resp := errorResponse{Error: err.Error()}

	var le *org2html.LineError
	if errors.As(err, &le) {
		resp.Line = le.Line
	}

	if status >= http.StatusInternalServerError {
		s.log.Error("conversion failed", "path", r.URL.Path, "status", status, "error", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(resp)
}
