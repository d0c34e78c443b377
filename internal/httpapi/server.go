// Package httpapi exposes the dispatcher over HTTP/JSON. It is a thin
// adapter: identity resolution happens upstream and arrives as the
// X-Player-Id header; all decisions live in the core.
package httpapi

import (
	"encoding/json"
	"errors"
	"strings"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/arbiterhq/arbiter/internal/admin"
	"github.com/arbiterhq/arbiter/internal/dispatch"
	"github.com/arbiterhq/arbiter/internal/match"
	"github.com/arbiterhq/arbiter/internal/render"
	"github.com/arbiterhq/arbiter/pkg/matchdto"
)

const requesterHeader = "X-Player-Id"

type Server struct {
	dispatcher *dispatch.Dispatcher
	renderer   render.BoardRenderer
	log        *zap.Logger
}

func NewServer(d *dispatch.Dispatcher, r render.BoardRenderer, log *zap.Logger) *Server {
	if log == nil {
		log = zap.NewNop()
	}
	return &Server{dispatcher: d, renderer: r, log: log}
}

// Handler routes requests by path and method.
func (s *Server) Handler() fasthttp.RequestHandler {
	return func(ctx *fasthttp.RequestCtx) {
		path := string(ctx.Path())
		method := string(ctx.Method())
		switch {
		case path == "/v1/match/start" && method == fasthttp.MethodPost:
			s.handleStartMatch(ctx)
		case path == "/v1/match/move" && method == fasthttp.MethodPost:
			s.handlePlayMove(ctx)
		case path == "/v1/match" && method == fasthttp.MethodGet:
			s.handleCheckMatch(ctx)
		case path == "/v1/match/board" && method == fasthttp.MethodGet:
			s.handleBoard(ctx)
		case path == "/v1/admin" && method == fasthttp.MethodGet:
			s.handleAdmin(ctx)
		case path == "/v1/admin" && method == fasthttp.MethodPost:
			s.handleUpdateAdmin(ctx)
		default:
			s.writeErrorCode(ctx, fasthttp.StatusNotFound, matchdto.CodeBadRequest, "unknown route")
		}
	}
}

func (s *Server) handleStartMatch(ctx *fasthttp.RequestCtx) {
	requester, ok := s.requester(ctx)
	if !ok {
		return
	}
	var req matchdto.StartMatchRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		s.writeErrorCode(ctx, fasthttp.StatusBadRequest, matchdto.CodeBadRequest, "malformed request body")
		return
	}
	mt, err := s.dispatcher.StartMatch(ctx, requester, req)
	if err != nil {
		s.writeError(ctx, err)
		return
	}
	s.writeJSON(ctx, fasthttp.StatusCreated, dispatch.ToState(mt))
}

func (s *Server) handlePlayMove(ctx *fasthttp.RequestCtx) {
	requester, ok := s.requester(ctx)
	if !ok {
		return
	}
	var req matchdto.PlayMoveRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		s.writeErrorCode(ctx, fasthttp.StatusBadRequest, matchdto.CodeBadRequest, "malformed request body")
		return
	}
	mt, err := s.dispatcher.PlayMove(ctx, requester, req)
	if err != nil {
		s.writeError(ctx, err)
		return
	}
	s.writeJSON(ctx, fasthttp.StatusOK, dispatch.ToState(mt))
}

func (s *Server) handleCheckMatch(ctx *fasthttp.RequestCtx) {
	host, opponent, ok := s.pairArgs(ctx)
	if !ok {
		return
	}
	mt, err := s.dispatcher.CheckMatch(ctx, host, opponent)
	if err != nil {
		s.writeError(ctx, err)
		return
	}
	s.writeJSON(ctx, fasthttp.StatusOK, dispatch.ToState(mt))
}

func (s *Server) handleBoard(ctx *fasthttp.RequestCtx) {
	host, opponent, ok := s.pairArgs(ctx)
	if !ok {
		return
	}
	mt, err := s.dispatcher.CheckMatch(ctx, host, opponent)
	if err != nil {
		s.writeError(ctx, err)
		return
	}
	opts := render.Options{}
	if n := len(mt.Moves); n > 0 {
		last := mt.Moves[n-1]
		opts.Highlight = &last
	}
	img, err := s.renderer.RenderPNG(ctx, mt.Board, opts)
	if err != nil {
		s.writeError(ctx, err)
		return
	}
	ctx.SetContentType("image/png")
	ctx.SetStatusCode(fasthttp.StatusOK)
	ctx.SetBody(img)
}

func (s *Server) handleAdmin(ctx *fasthttp.RequestCtx) {
	current, err := s.dispatcher.Admin(ctx)
	if err != nil {
		s.writeError(ctx, err)
		return
	}
	s.writeJSON(ctx, fasthttp.StatusOK, matchdto.AdminState{Admin: current})
}

func (s *Server) handleUpdateAdmin(ctx *fasthttp.RequestCtx) {
	requester, ok := s.requester(ctx)
	if !ok {
		return
	}
	var req matchdto.UpdateAdminRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		s.writeErrorCode(ctx, fasthttp.StatusBadRequest, matchdto.CodeBadRequest, "malformed request body")
		return
	}
	if err := s.dispatcher.UpdateAdmin(ctx, requester, req); err != nil {
		s.writeError(ctx, err)
		return
	}
	current, err := s.dispatcher.Admin(ctx)
	if err != nil {
		s.writeError(ctx, err)
		return
	}
	s.writeJSON(ctx, fasthttp.StatusOK, matchdto.AdminState{Admin: current})
}

// requester extracts the resolved caller identity; mutating endpoints
// refuse anonymous requests.
func (s *Server) requester(ctx *fasthttp.RequestCtx) (string, bool) {
	requester := strings.TrimSpace(string(ctx.Request.Header.Peek(requesterHeader)))
	if requester == "" {
		s.writeErrorCode(ctx, fasthttp.StatusForbidden, matchdto.CodeUnauthorized, "missing "+requesterHeader+" header")
		return "", false
	}
	return requester, true
}

func (s *Server) pairArgs(ctx *fasthttp.RequestCtx) (string, string, bool) {
	host := strings.TrimSpace(string(ctx.QueryArgs().Peek("host")))
	opponent := strings.TrimSpace(string(ctx.QueryArgs().Peek("opponent")))
	if host == "" || opponent == "" {
		s.writeErrorCode(ctx, fasthttp.StatusBadRequest, matchdto.CodeBadRequest, "host and opponent query parameters are required")
		return "", "", false
	}
	return host, opponent, true
}

func (s *Server) writeJSON(ctx *fasthttp.RequestCtx, status int, v any) {
	body, err := json.Marshal(v)
	if err != nil {
		s.log.Error("response_marshal_error", zap.Error(err))
		s.writeErrorCode(ctx, fasthttp.StatusInternalServerError, matchdto.CodeInternal, "")
		return
	}
	ctx.SetContentType("application/json")
	ctx.SetStatusCode(status)
	ctx.SetBody(body)
}

// writeError maps the error taxonomy onto HTTP statuses and stable codes.
func (s *Server) writeError(ctx *fasthttp.RequestCtx, err error) {
	switch {
	case errors.Is(err, match.ErrOutOfRange):
		s.writeErrorCode(ctx, fasthttp.StatusBadRequest, matchdto.CodeOutOfRange, err.Error())
	case errors.Is(err, match.ErrNoMatch):
		s.writeErrorCode(ctx, fasthttp.StatusNotFound, matchdto.CodeNoMatch, err.Error())
	case errors.Is(err, match.ErrNotYourTurn):
		s.writeErrorCode(ctx, fasthttp.StatusConflict, matchdto.CodeNotYourTurn, err.Error())
	case errors.Is(err, match.ErrIllegalMove):
		s.writeErrorCode(ctx, fasthttp.StatusBadRequest, matchdto.CodeIllegalMove, err.Error())
	case errors.Is(err, match.ErrMatchAlreadyFinished):
		s.writeErrorCode(ctx, fasthttp.StatusConflict, matchdto.CodeMatchAlreadyFinished, err.Error())
	case errors.Is(err, match.ErrUnauthorized), errors.Is(err, admin.ErrUnauthorized):
		s.writeErrorCode(ctx, fasthttp.StatusForbidden, matchdto.CodeUnauthorized, err.Error())
	default:
		s.log.Error("request_error", zap.Error(err))
		s.writeErrorCode(ctx, fasthttp.StatusInternalServerError, matchdto.CodeInternal, "")
	}
}

func (s *Server) writeErrorCode(ctx *fasthttp.RequestCtx, status int, code, message string) {
	body, _ := json.Marshal(matchdto.DomainError{Code: code, Message: message})
	ctx.SetContentType("application/json")
	ctx.SetStatusCode(status)
	ctx.SetBody(body)
}
