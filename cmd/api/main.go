package main

import (
	"fmt"
	"net/http"

	"github.com/ats-hr/attendance-backend-go/internal/config"
	appHTTP "github.com/ats-hr/attendance-backend-go/internal/handler/http"
	"github.com/ats-hr/attendance-backend-go/internal/pkg/database"
	"github.com/ats-hr/attendance-backend-go/internal/repository/postgresql"
	attendanceService "github.com/ats-hr/attendance-backend-go/internal/service/attendance"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	dsn := cfg.DatabaseURL()
	db, err := database.NewPostgreSQLDB(dsn)
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	attendanceRepo := postgresql.NewAttendanceRepository(db)
	attendanceSvc := attendanceService.NewAttendanceService(db, attendanceRepo)
	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)

	router := appHTTP.NewRouter(cfg, attendanceHandler)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
