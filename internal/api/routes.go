package api

func (s *Server) setupRoutes() {
	s.router.GET("/", s.healthHandler.ServiceInfo)
	s.router.GET("/health", s.healthHandler.HealthCheck)

	system := s.router.Group("/system")
	{
		system.GET("/stats", s.systemHandler.GetStats)
	}

	api := s.router.Group("/api")
	{
		api.GET("/nav", s.dashboardHandler.Navigation)
		api.GET("/dashboard", s.dashboardHandler.Overview)

		detection := api.Group("/detection")
		{
			detection.GET("", s.detectionHandler.GetState)
			detection.POST("/image", s.detectionHandler.UploadImage)
			detection.PUT("/display", s.detectionHandler.SetDisplaySize)
			detection.PUT("/settings", s.detectionHandler.UpdateSettings)
			detection.POST("/run", s.detectionHandler.Run)
			detection.GET("/overlay.png", s.detectionHandler.OverlayPNG)
			detection.GET("/overlay/commands", s.detectionHandler.OverlayCommands)
			detection.GET("/annotated.jpg", s.detectionHandler.AnnotatedJPEG)
			detection.GET("/stream", s.detectionHandler.Stream)
		}

		classification := api.Group("/classification")
		{
			classification.GET("", s.classificationHandler.GetState)
			classification.POST("/image", s.classificationHandler.UploadImage)
			classification.POST("/run", s.classificationHandler.Run)
		}
	}
}
