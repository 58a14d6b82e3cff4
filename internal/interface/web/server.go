package web

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
	"github.com/unft/unftd/internal/core/application"
)

type Server struct {
	server *http.Server
}

func NewServer(port uint32, svc application.Service) *Server {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())

	h := newHandler(svc)

	router.GET("/healthz", h.health)

	v1 := router.Group("/v1")
	{
		v1.POST("/admin/initialize", h.initialize)
		v1.POST("/admin/pause", h.setPaused)
		v1.GET("/config", h.getConfig)
		v1.GET("/stats", h.getStats)

		v1.POST("/nfts", h.mintNft)
		v1.GET("/nfts", h.listAssets)
		v1.GET("/nfts/:mint", h.getAsset)
		v1.POST("/nfts/:mint/verify", h.verifyOwnership)

		v1.POST("/transfers", h.initiateTransfer)
		v1.GET("/transfers/:mint/:nonce", h.getTransfer)

		v1.POST("/receipts", h.receiveTransfer)
		v1.GET("/receipts/:txhash/:nonce", h.getReceipt)
	}

	return &Server{
		server: &http.Server{
			Addr:    fmt.Sprintf(":%d", port),
			Handler: router,
		},
	}
}

func (s *Server) Start() error {
	log.WithField("addr", s.server.Addr).Info("starting http server")
	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

func (s *Server) Stop() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return s.server.Shutdown(ctx)
}
