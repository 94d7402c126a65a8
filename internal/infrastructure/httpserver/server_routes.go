package httpserver

func (s *Server) setupRoutes() {
	s.echo.GET("/health_check", s.livenessCheck)
	s.echo.GET("/health", s.healthCheck)
	s.echo.GET("/metrics", s.metricsEndpoint)

	s.echo.POST("/subscriptions", s.subscribe, s.middleware.RateLimit.Handler())
	s.echo.GET("/subscriptions/confirm", s.confirm)
}
