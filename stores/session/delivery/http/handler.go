package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/x-xyz/nftexplorer/base/ctx"
	"github.com/x-xyz/nftexplorer/base/delivery"
	"github.com/x-xyz/nftexplorer/domain"
	"github.com/x-xyz/nftexplorer/middleware"
)

type handler struct {
	sessionUseCase domain.SessionUseCase
}

func New(e *echo.Echo, sessionUseCase domain.SessionUseCase) {
	h := &handler{sessionUseCase}

	e.POST("/sessions", h.create)

	g := e.Group("/sessions/:id", middleware.IsValidSessionId("id"))

	g.GET("", h.get)
	g.DELETE("", h.delete)
	g.PUT("/wallet", h.connect)
	g.POST("/balances", h.checkBalances)
	g.PUT("/query", h.setQuery)
	g.POST("/nft/check", h.checkNFT)
	g.POST("/nft/display", h.displayNFT)
}

func respond(c echo.Context, s *domain.Session, err error) error {
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, s)
}

// create
//
//	@Summary		Start an inspection session
//	@Tags			sessions
//	@Produce		json
//	@Success		200	{object}	domain.Session
//	@Router			/sessions [post]
func (h *handler) create(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	s, err := h.sessionUseCase.Create(ctx)
	return respond(c, s, err)
}

// get
//
//	@Summary		Get a session
//	@Tags			sessions
//	@Produce		json
//	@Param			id	path		string	true	"session id"
//	@Success		200	{object}	domain.Session
//	@Failure		404
//	@Router			/sessions/{id} [get]
func (h *handler) get(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	s, err := h.sessionUseCase.Get(ctx, c.Param("id"))
	return respond(c, s, err)
}

// delete
//
//	@Summary		End a session
//	@Tags			sessions
//	@Param			id	path	string	true	"session id"
//	@Success		200
//	@Failure		404
//	@Router			/sessions/{id} [delete]
func (h *handler) delete(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	id := c.Param("id")
	if err := h.sessionUseCase.Delete(ctx, id); err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, id)
}

// connect
//
//	@Summary		Report the wallet connection, installed=false marks the wallet as not installed
//	@Tags			sessions
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string					true	"session id"
//	@Param			params	body		http.connect.params		true	"params"
//	@Success		200		{object}	domain.Session
//	@Failure		400
//	@Router			/sessions/{id}/wallet [put]
func (h *handler) connect(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	type params struct {
		Installed       *bool          `json:"installed"`
		ChainId         domain.ChainId `json:"chainId"`
		SelectedAddress domain.Address `json:"selectedAddress" validate:"omitempty,address"`
	}

	p := params{}
	if err := c.Bind(&p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	if err := c.Validate(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	var wallet *domain.WalletConnection
	if p.Installed == nil || *p.Installed {
		if len(p.ChainId) > 0 || len(p.SelectedAddress) > 0 {
			wallet = &domain.WalletConnection{ChainId: p.ChainId, SelectedAddress: p.SelectedAddress}
		}
	}

	s, err := h.sessionUseCase.Connect(ctx, c.Param("id"), wallet)
	return respond(c, s, err)
}

// checkBalances
//
//	@Summary		Read the native and reference token balances of the connected wallet
//	@Tags			sessions
//	@Produce		json
//	@Param			id	path		string	true	"session id"
//	@Success		200	{object}	domain.Session
//	@Failure		409	"wallet not connected"
//	@Router			/sessions/{id}/balances [post]
func (h *handler) checkBalances(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	s, err := h.sessionUseCase.CheckBalances(ctx, c.Param("id"))
	return respond(c, s, err)
}

// setQuery
//
//	@Summary		Set the contract address and token id to inspect
//	@Tags			sessions
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string			true	"session id"
//	@Param			params	body		domain.NFTQuery	true	"params"
//	@Success		200		{object}	domain.Session
//	@Failure		400
//	@Router			/sessions/{id}/query [put]
func (h *handler) setQuery(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	p := domain.NFTQuery{}
	if err := c.Bind(&p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	s, err := h.sessionUseCase.SetQuery(ctx, c.Param("id"), p)
	return respond(c, s, err)
}

// checkNFT
//
//	@Summary		Detect the token standard and read owner, balance and metadata uri
//	@Tags			sessions
//	@Produce		json
//	@Param			id	path		string	true	"session id"
//	@Success		200	{object}	domain.Session
//	@Failure		409	"wallet not connected"
//	@Router			/sessions/{id}/nft/check [post]
func (h *handler) checkNFT(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	s, err := h.sessionUseCase.CheckNFT(ctx, c.Param("id"))
	return respond(c, s, err)
}

// displayNFT
//
//	@Summary		Fetch the metadata document and read description and image
//	@Tags			sessions
//	@Produce		json
//	@Param			id	path		string	true	"session id"
//	@Success		200	{object}	domain.Session
//	@Router			/sessions/{id}/nft/display [post]
func (h *handler) displayNFT(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	s, err := h.sessionUseCase.DisplayNFT(ctx, c.Param("id"))
	return respond(c, s, err)
}
