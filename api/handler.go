package api

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"

	"schedsim/internal/sched"
)

// ScheduleRequest is the JSON body accepted by every schedule endpoint.
type ScheduleRequest struct {
	Processes []sched.Process `json:"processes"`
}

// ScheduleResponse wraps the results of one or more algorithms.
type ScheduleResponse struct {
	Results []sched.Result `json:"results"`
}

type SchedulerHandler interface {
	FirstComeFirstServe(ctx *fiber.Ctx) error
	ShortestJobFirst(ctx *fiber.Ctx) error
	AllAlgorithms(ctx *fiber.Ctx) error
	Health(ctx *fiber.Ctx) error
}

type SchedulerHandlerImpl struct {
	config sched.Config
}

func NewSchedulerHandlerImpl(config sched.Config) *SchedulerHandlerImpl {
	return &SchedulerHandlerImpl{config: config}
}

// NewApp builds the fiber application with every route registered.
func NewApp(handler SchedulerHandler) *fiber.App {
	app := fiber.New(fiber.Config{DisableStartupMessage: true})
	api := app.Group("/api")

	v1 := api.Group("/v1")
	{
		v1.Post("/fcfs", handler.FirstComeFirstServe)
		v1.Post("/sjf", handler.ShortestJobFirst)
		v1.Post("/all", handler.AllAlgorithms)
		v1.Get("/health", handler.Health)
	}
	return app
}

func (s *SchedulerHandlerImpl) FirstComeFirstServe(ctx *fiber.Ctx) error {
	return s.schedule(ctx, sched.FCFS{})
}

func (s *SchedulerHandlerImpl) ShortestJobFirst(ctx *fiber.Ctx) error {
	return s.schedule(ctx, sched.SJF{})
}

func (s *SchedulerHandlerImpl) AllAlgorithms(ctx *fiber.Ctx) error {
	return s.schedule(ctx, sched.Algorithms()...)
}

func (s *SchedulerHandlerImpl) Health(ctx *fiber.Ctx) error {
	return ctx.JSON(fiber.Map{"status": "ok"})
}

func (s *SchedulerHandlerImpl) schedule(ctx *fiber.Ctx, algos ...sched.Algorithm) error {
	var request ScheduleRequest
	if err := ctx.BodyParser(&request); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request format",
		})
	}
	if len(request.Processes) > s.config.MaxProcesses {
		return ctx.Status(fiber.StatusRequestEntityTooLarge).JSON(fiber.Map{
			"error": "too many processes",
		})
	}

	results, err := sched.RunAll(request.Processes, algos...)
	if err != nil {
		log.Printf("[API] %s: %v", ctx.Path(), err)
		status := fiber.StatusInternalServerError
		if errors.Is(err, sched.ErrEmptyInput) || errors.Is(err, sched.ErrInvalidBurst) || errors.Is(err, sched.ErrInvalidArrival) {
			status = fiber.StatusUnprocessableEntity
		}
		return ctx.Status(status).JSON(fiber.Map{"error": err.Error()})
	}

	log.Printf("[API] %s: scheduled %d processes", ctx.Path(), len(request.Processes))
	return ctx.JSON(ScheduleResponse{Results: results})
}
