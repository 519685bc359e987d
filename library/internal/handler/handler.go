package handler

import (
	"bufio"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.uber.org/zap"

	"github.com/Astemirdum/biblioteca/library/internal/errs"
	"github.com/Astemirdum/biblioteca/pkg/jsonx"
	md "github.com/Astemirdum/biblioteca/pkg/middleware"
	"github.com/Astemirdum/biblioteca/pkg/validate"
	_ "github.com/Astemirdum/biblioteca/swagger"
)

type Handler struct {
	catalogSvc  CatalogService
	registrySvc RegistryService
	log         *zap.Logger
}

func New(catalogSvc CatalogService, registrySvc RegistryService, log *zap.Logger) *Handler {
	h := &Handler{
		catalogSvc:  catalogSvc,
		registrySvc: registrySvc,
		log:         log.Named("handler"),
	}
	return h
}

func (h *Handler) NewRouter() *echo.Echo {
	e := echo.New()
	const (
		baseRPS = 10
		apiRPS  = 100
	)
	e.HideBanner = true
	e.JSONSerializer = jsonx.Serializer{}
	e.HTTPErrorHandler = h.HTTPErrorHandler

	e.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{
		StackSize: 4 << 10, // 4 KB
	}))
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{http.MethodGet, http.MethodOptions, http.MethodHead, http.MethodPut, http.MethodPatch, http.MethodPost, http.MethodDelete},
		AllowCredentials: true,
	}))

	base := e.Group("", md.NewRateLimiter(baseRPS))
	base.GET("/", h.Index)
	base.GET("/manage/health", h.Health)
	base.GET("/swagger/*", echoSwagger.WrapHandler)

	e.Validator = validate.NewCustomValidator()

	api := e.Group("/api",
		middleware.RequestLoggerWithConfig(md.RequestLoggerConfig(h.log)),
		md.NewRequestID(),
		md.NewRateLimiter(apiRPS),
	)
	api.GET("/status", h.Status)

	api.GET("/livros", h.ListBooks)
	api.POST("/livros", h.CreateBook)
	api.GET("/livros/:id", h.GetBook)
	api.PUT("/livros/:id", h.UpdateBook)
	api.DELETE("/livros/:id", h.DeleteBook)

	api.GET("/emprestimos", h.ListLoans)
	api.POST("/emprestimos", h.CreateLoan)
	api.GET("/emprestimos/:id", h.GetLoan)
	api.PUT("/emprestimos/:id", h.UpdateLoan)
	api.DELETE("/emprestimos/:id", h.DeleteLoan)

	return e
}

func (h *Handler) Health(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}

// Index godoc
// @Summary  API index
// @Tags     status
// @Produce  json
// @Success  200  {object}  handler.IndexResponse
// @Router   / [get]
func (h *Handler) Index(c echo.Context) error {
	return c.JSON(http.StatusOK, IndexResponse{
		Message: "API da Biblioteca está funcionando!",
		Endpoints: map[string]string{
			"livros":      "/api/livros",
			"emprestimos": "/api/emprestimos",
		},
	})
}

// Status godoc
// @Summary  Status probe
// @Tags     status
// @Produce  json
// @Success  200  {object}  handler.StatusResponse
// @Router   /api/status [get]
func (h *Handler) Status(c echo.Context) error {
	return c.JSON(http.StatusOK, StatusResponse{
		Status:  "online",
		Message: "API funcionando corretamente",
	})
}

// HTTPErrorHandler renders every error, including echo's own 404 and 405,
// in the response envelope.
func (h *Handler) HTTPErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}
	code := http.StatusInternalServerError
	msg := http.StatusText(code)
	var he *echo.HTTPError
	if errors.As(err, &he) {
		code = he.Code
		msg = fmt.Sprint(he.Message)
	}
	if c.Request().Method == http.MethodHead {
		err = c.NoContent(code)
	} else {
		err = c.JSON(code, failure(msg))
	}
	if err != nil {
		h.log.Error("write error response", zap.Error(err))
	}
}

// fail maps a service error onto its HTTP status. Unexpected errors are
// reported as "Erro ao <op>: <cause>".
func (h *Handler) fail(op string, err error) error {
	switch {
	case errors.Is(err, errs.ErrValidation), errors.Is(err, errs.ErrConflict):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, errs.ErrNotFound):
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	}
	h.log.Error(op, zap.Error(err))
	return echo.NewHTTPError(http.StatusInternalServerError,
		fmt.Sprintf("Erro ao %s: %s", op, err.Error())).SetInternal(err)
}

func parseID(c echo.Context) (int, error) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "ID inválido")
	}
	return id, nil
}

// bind decodes and validates the request body. A missing body, whatever its
// framing or content type, and a body without any known field are both
// reported as "no data".
func bind(c echo.Context, req interface{ Empty() bool }) error {
	if emptyBody(c.Request()) {
		return echo.NewHTTPError(http.StatusBadRequest, errs.MsgNoData)
	}
	if err := c.Bind(req); err != nil {
		return err
	}
	if req.Empty() {
		return echo.NewHTTPError(http.StatusBadRequest, errs.MsgNoData)
	}
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return nil
}

// emptyBody peeks at bodies of unknown length (chunked) and puts the peeked
// byte back.
func emptyBody(r *http.Request) bool {
	if r.Body == nil || r.Body == http.NoBody || r.ContentLength == 0 {
		return true
	}
	if r.ContentLength > 0 {
		return false
	}
	br := bufio.NewReader(r.Body)
	if _, err := br.Peek(1); err != nil {
		return true
	}
	r.Body = struct {
		io.Reader
		io.Closer
	}{br, r.Body}
	return false
}
