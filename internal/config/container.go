package config

import (
	"resume-analyzer/internal/domain"
	"resume-analyzer/internal/service"
	"resume-analyzer/pkg/logger"
)

// Container holds all application dependencies
type Container struct {
	Config          domain.Config
	Logger          domain.Logger
	Validator       domain.FileValidator
	Detector        domain.ScannedDetector
	Pipeline        domain.FilePipeline
	InferenceClient domain.InferenceClient
	AnalysisService domain.AnalysisService
}

// NewContainer creates a new dependency injection container
func NewContainer() *Container {
	cfg := NewConfig()
	appLogger := logger.NewLogger(cfg.GetLogLevel())

	pdfEngine := service.SharedPDFEngine()
	ocrEngine := service.NewTesseractEngine(appLogger)

	validator := service.NewFileValidator(cfg)
	detector := service.NewScannedDetector(pdfEngine, cfg, appLogger)

	extractors := []domain.TextExtractor{
		service.NewTextFileExtractor(),
		service.NewWordExtractor(),
		service.NewImageExtractor(ocrEngine, cfg),
		service.NewPDFExtractor(pdfEngine, ocrEngine, cfg, appLogger),
	}

	pipeline := service.NewPipelineService(validator, extractors, appLogger)
	inferenceClient := service.NewInferenceClient(cfg, appLogger)
	analysisService := service.NewAnalysisService(inferenceClient, appLogger)

	return &Container{
		Config:          cfg,
		Logger:          appLogger,
		Validator:       validator,
		Detector:        detector,
		Pipeline:        pipeline,
		InferenceClient: inferenceClient,
		AnalysisService: analysisService,
	}
}

// GetConfig returns the configuration instance
func (c *Container) GetConfig() domain.Config {
	return c.Config
}

// GetLogger returns the logger instance
func (c *Container) GetLogger() domain.Logger {
	return c.Logger
}

// GetPipeline returns the file pipeline instance
func (c *Container) GetPipeline() domain.FilePipeline {
	return c.Pipeline
}

// GetAnalysisService returns the analysis service instance
func (c *Container) GetAnalysisService() domain.AnalysisService {
	return c.AnalysisService
}
