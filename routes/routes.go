package routes

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"hotel-backoffice/controllers"
	"hotel-backoffice/middleware"
)

func SetupRouter(
	rc *controllers.ReservationController,
	ec *controllers.ExpenseController,
	ic *controllers.InvoiceController,
	roomc *controllers.RoomController,
	corsOrigins []string,
) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), middleware.Logger())

	allowCredentials := true
	for _, origin := range corsOrigins {
		if origin == "*" {
			allowCredentials = false
			break
		}
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     corsOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: allowCredentials,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	{
		reservations := api.Group("/reservations")
		{
			reservations.GET("", rc.List)
			reservations.POST("", rc.Create)

			// fixed paths before /:id
			reservations.POST("/preview", rc.Preview)
			reservations.POST("/occupancy", rc.SuggestOccupancy)

			reservations.GET("/:id", rc.Get)
			reservations.PUT("/:id", rc.Update)
			reservations.PATCH("/:id/status", rc.ChangeStatus)
			reservations.DELETE("/:id", rc.Delete)
		}

		api.GET("/availability", rc.Availability)

		expenses := api.Group("/expenses")
		{
			expenses.GET("", ec.List)
			expenses.POST("", ec.Create)
			expenses.PUT("/:id", ec.Update)
			expenses.DELETE("/:id", ec.Delete)
		}

		invoices := api.Group("/invoices")
		{
			invoices.GET("", ic.List)
			invoices.GET("/reservation/:id", ic.GetByReservation)
		}

		rooms := api.Group("/rooms")
		{
			rooms.GET("", roomc.List)
			rooms.GET("/:number", roomc.Get)
			rooms.POST("", roomc.Create)
			rooms.DELETE("/:number", roomc.Delete)
		}
	}

	return r
}
