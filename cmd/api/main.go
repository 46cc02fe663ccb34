package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/nimbushr/employee-manager-go/internal/config"
	"github.com/nimbushr/employee-manager-go/internal/domain/employee"
	"github.com/nimbushr/employee-manager-go/internal/fixtures"
	appHTTP "github.com/nimbushr/employee-manager-go/internal/handler/http"
	"github.com/nimbushr/employee-manager-go/internal/pkg/debounce"
	"github.com/nimbushr/employee-manager-go/internal/pkg/metrics"
	"github.com/nimbushr/employee-manager-go/internal/pkg/snapshot"
	"github.com/nimbushr/employee-manager-go/internal/pkg/sse"
	"github.com/nimbushr/employee-manager-go/internal/repository/memory"
	employeeService "github.com/nimbushr/employee-manager-go/internal/service/employee"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	snapshotStore, err := snapshot.NewStore(cfg.Snapshot.Path)
	if err != nil {
		fmt.Println("Error initializing snapshot storage:", err)
		return
	}

	initial, found, err := snapshotStore.Load()
	if err != nil {
		fmt.Println("Error loading snapshot:", err)
		return
	}
	// Seed only when no snapshot exists at all. An existing snapshot with
	// zero employees is a collection the user emptied on purpose.
	if !found && cfg.Snapshot.SeedOnEmpty {
		initial = fixtures.SeedEmployees()
		slog.Info("no snapshot found, starting from seed data", "employees", len(initial))
	}

	registry := prometheus.NewRegistry()
	appMetrics := metrics.NewMetrics(registry)

	employeeStore := memory.NewEmployeeStore(initial)
	appMetrics.EmployeesTotal.Set(float64(employeeStore.Count()))

	hub := sse.NewHub()

	// Snapshot writes are coalesced: a burst of mutations (bulk delete,
	// rapid edits) becomes one disk write on the trailing edge.
	saver := debounce.New(cfg.Snapshot.Debounce, func() {
		start := time.Now()
		all, err := employeeStore.List(context.Background())
		if err != nil {
			return
		}
		if err := snapshotStore.Save(all); err != nil {
			appMetrics.SnapshotFailures.Inc()
			slog.Error("failed to save snapshot", "error", err)
			return
		}
		appMetrics.SnapshotDuration.Observe(time.Since(start).Seconds())
	})

	employeeStore.Subscribe(func(change employee.Change) {
		appMetrics.Mutations.WithLabelValues(string(change.Op)).Inc()
		appMetrics.EmployeesTotal.Set(float64(employeeStore.Count()))
		saver.Trigger()
		hub.Publish(sse.Event{
			Event: "employees.changed",
			Data: map[string]interface{}{
				"op":  change.Op,
				"ids": change.IDs,
			},
		})
	})

	empService := employeeService.NewEmployeeService(employeeStore)

	employeeHandler := appHTTP.NewEmployeeHandler(empService)
	masterHandler := appHTTP.NewMasterHandler()
	eventsHandler := appHTTP.NewEventsHandler(hub)

	router := appHTTP.NewRouter(appHTTP.RouterConfig{
		AllowedOrigins: cfg.CORS.AllowedOrigins,
		Env:            cfg.App.Env,
		Registry:       registry,
	}, employeeHandler, masterHandler, eventsHandler)

	defer saver.Flush()

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
