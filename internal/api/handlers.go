package api

import (
	"errors"

	"github.com/dmitrymomot/urlkit/handler"
	"github.com/dmitrymomot/urlkit/pkg/logger"
	"github.com/dmitrymomot/urlkit/pkg/sanitizer"
	"github.com/dmitrymomot/urlkit/pkg/slug"
	"github.com/dmitrymomot/urlkit/pkg/urlcodec"
	"github.com/dmitrymomot/urlkit/pkg/urlparams"
)

type TextRequest struct {
	Text string `json:"text" validate:"max=1048576"`
}

type EscapeRequest struct {
	Text string `json:"text" validate:"max=1048576"`
	// Normalize applies Unicode NFC before escaping.
	Normalize bool `json:"normalize,omitempty"`
}

type StripTagsRequest struct {
	Text  string `json:"text" validate:"max=1048576"`
	Allow string `json:"allow,omitempty" validate:"max=4096"`
}

type TrimRequest struct {
	Text  string `json:"text" validate:"max=1048576"`
	Token string `json:"token,omitempty" validate:"max=256"`
}

type SlugRequest struct {
	Text      string `json:"text" validate:"max=1048576"`
	MaxLength int    `json:"max_length,omitempty" validate:"gte=0,lte=2048"`
	Separator string `json:"separator,omitempty" validate:"max=8"`
	Suffix    int    `json:"suffix,omitempty" validate:"gte=0,lte=32"`
}

// URLRequest addresses a URL extractor. An empty URL means the URL of the
// request itself.
type URLRequest struct {
	URL   string `json:"url,omitempty" validate:"max=8192"`
	Param string `json:"param,omitempty" validate:"max=1024"`
}

type ResultResponse struct {
	Result string `json:"result"`
}

type StripTagsResponse struct {
	Result    string `json:"result"`
	Whitelist string `json:"whitelist"`
}

// ParamsResponse carries either the full mapping or a single lookup.
// Params is null when the fragment is absent.
type ParamsResponse struct {
	Params *urlparams.Params `json:"params,omitempty"`
	Param  string            `json:"param,omitempty"`
	Value  *string           `json:"value,omitempty"`
	Found  bool              `json:"found"`
}

type HashResponse struct {
	Hash   *string           `json:"hash"`
	Params *urlparams.Params `json:"params"`
	Base   *string           `json:"base"`
}

func (s *Service) encode(_ handler.Context, req TextRequest) handler.Response {
	return handler.JSON(ResultResponse{Result: urlcodec.Encode(req.Text)})
}

func (s *Service) decode(ctx handler.Context, req TextRequest) handler.Response {
	out, err := urlcodec.Decode(req.Text)
	if err != nil {
		return s.malformed(ctx, "decode", err)
	}
	return handler.JSON(ResultResponse{Result: out})
}

func (s *Service) escape(_ handler.Context, req EscapeRequest) handler.Response {
	return handler.JSON(ResultResponse{Result: sanitizer.Escaper(req.Normalize)(req.Text)})
}

func (s *Service) unescape(_ handler.Context, req TextRequest) handler.Response {
	return handler.JSON(ResultResponse{Result: sanitizer.UnescapeHTML(req.Text)})
}

func (s *Service) stripTags(ctx handler.Context, req StripTagsRequest) handler.Response {
	w := s.app.Filter.Whitelist(s.app.Whitelist(req.Allow))
	s.app.Log.DebugContext(ctx, "stripping tags",
		logger.Operation("strip-tags"),
		logger.Whitelist(w.String()),
		logger.InputSize(len(req.Text)),
	)
	return handler.JSON(StripTagsResponse{
		Result:    s.app.Filter.StripWith(req.Text, w),
		Whitelist: w.String(),
	})
}

func (s *Service) text(_ handler.Context, req TextRequest) handler.Response {
	return handler.JSON(ResultResponse{Result: sanitizer.TextContent(req.Text)})
}

func (s *Service) trim(_ handler.Context, req TrimRequest) handler.Response {
	return handler.JSON(ResultResponse{Result: sanitizer.TrimRepeated(req.Text, req.Token)})
}

func (s *Service) slug(_ handler.Context, req SlugRequest) handler.Response {
	return handler.JSON(ResultResponse{Result: slug.Make(req.Text,
		slug.MaxLength(req.MaxLength),
		slug.Separator(req.Separator),
		slug.WithSuffix(req.Suffix),
	)})
}

func (s *Service) query(ctx handler.Context, req URLRequest) handler.Response {
	nav := ctx.Navigation()
	if req.Param == "" {
		params, err := urlparams.Query(nav, req.URL)
		if err != nil {
			return s.malformed(ctx, "query", err)
		}
		return handler.JSON(ParamsResponse{Params: params, Found: true})
	}

	value, ok, err := urlparams.QueryParam(nav, req.URL, req.Param)
	if err != nil {
		return s.malformed(ctx, "query", err)
	}
	return handler.JSON(lookup(req.Param, value, ok))
}

func (s *Service) hash(ctx handler.Context, req URLRequest) handler.Response {
	nav := ctx.Navigation()
	if req.Param != "" {
		value, ok, err := urlparams.HashParam(nav, req.URL, req.Param)
		if err != nil {
			return s.malformed(ctx, "hash", err)
		}
		return handler.JSON(lookup(req.Param, value, ok))
	}

	params, err := urlparams.ParseHash(nav, req.URL)
	if err != nil {
		return s.malformed(ctx, "hash", err)
	}

	var resp HashResponse
	if h, ok := urlparams.Hash(nav, req.URL); ok {
		resp.Hash = &h
	}
	if b, ok := urlparams.URLWithoutHash(nav, req.URL); ok {
		resp.Base = &b
	}
	resp.Params = params
	return handler.JSON(resp)
}

func lookup(param, value string, ok bool) ParamsResponse {
	resp := ParamsResponse{Param: param, Found: ok}
	if ok {
		resp.Value = &value
	}
	return resp
}

// malformed maps decoding failures to 400 and anything else to 500.
func (s *Service) malformed(ctx handler.Context, op string, err error) handler.Response {
	s.app.Log.WarnContext(ctx, "malformed input", logger.Operation(op), logger.Error(err))
	if errors.Is(err, urlcodec.ErrMalformedEscape) {
		return handler.JSONError(errors.Join(ErrMalformedInput, err))
	}
	return handler.JSONError(err)
}
