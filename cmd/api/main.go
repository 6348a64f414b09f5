package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/rutvikveer9289-cyber/HRMS/internal/config"
	appHTTP "github.com/rutvikveer9289-cyber/HRMS/internal/handler/http"
	"github.com/rutvikveer9289-cyber/HRMS/internal/pkg/cron"
	"github.com/rutvikveer9289-cyber/HRMS/internal/pkg/sse"
	"github.com/rutvikveer9289-cyber/HRMS/internal/pkg/upstream"
	attendanceService "github.com/rutvikveer9289-cyber/HRMS/internal/service/attendance"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	var cache *upstream.Cache
	if cfg.Cache.Path != "" {
		cache, err = upstream.OpenCache(cfg.Cache.Path)
		if err != nil {
			log.Fatal("Failed to open snapshot cache: ", err)
		}
		defer cache.Close()
	}

	hrClient := upstream.NewClient(cfg.Upstream.BaseURL, cfg.Upstream.RequestTimeout, cache)
	hub := sse.NewHub()
	attendanceSvc := attendanceService.NewAttendanceService(hrClient, hub)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	go attendanceSvc.Run(ctx)

	scheduler := cron.NewScheduler()
	cron.RegisterUpstreamRefresh(scheduler, attendanceSvc, cfg.Upstream.RefreshInterval)
	scheduler.Start()
	defer scheduler.Stop()

	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)
	dashboardHandler := appHTTP.NewDashboardHandler(attendanceSvc)
	employeeHandler := appHTTP.NewEmployeeHandler(attendanceSvc)
	holidayHandler := appHTTP.NewHolidayHandler(attendanceSvc)
	eventsHandler := appHTTP.NewEventsHandler(hub)

	router := appHTTP.NewRouter(
		cfg.App,
		attendanceHandler,
		dashboardHandler,
		employeeHandler,
		holidayHandler,
		eventsHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	server := &http.Server{Addr: port, Handler: router}

	go func() {
		<-ctx.Done()
		_ = server.Shutdown(context.Background())
	}()

	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		fmt.Println("Server error:", err)
	}
}
