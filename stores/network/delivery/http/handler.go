package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/x-xyz/nftexplorer/base/delivery"
	"github.com/x-xyz/nftexplorer/domain"
)

type handler struct {
	networkUseCase domain.NetworkUseCase
}

func New(e *echo.Echo, networkUseCase domain.NetworkUseCase) {
	h := &handler{networkUseCase}

	g := e.Group("/networks")

	g.GET("", h.list)
	g.GET("/:chainId", h.resolve)
}

// list
//
//	@Summary		List known networks
//	@Tags			networks
//	@Produce		json
//	@Success		200	{object}	[]domain.ChainProfile
//	@Router			/networks [get]
func (h *handler) list(c echo.Context) error {
	return delivery.MakeJsonResp(c, http.StatusOK, h.networkUseCase.List())
}

// resolve
//
//	@Summary		Resolve a chain id, unknown ids get a placeholder profile
//	@Tags			networks
//	@Produce		json
//	@Param			chainId	path		string	true	"chain id. e.g: `1` for ethereum"	example(1)
//	@Success		200		{object}	domain.ChainProfile
//	@Router			/networks/{chainId} [get]
func (h *handler) resolve(c echo.Context) error {
	chainId := domain.ChainId(c.Param("chainId"))
	return delivery.MakeJsonResp(c, http.StatusOK, h.networkUseCase.Resolve(chainId))
}
