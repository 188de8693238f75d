package routes

import (
	"reservago/middleware"
	"reservago/ratelim"
	"reservago/reservas"
	"reservago/search"
	"reservago/sedes"

	"github.com/julienschmidt/httprouter"
)

func AddSedeRoutes(router *httprouter.Router) {
	router.GET("/api/sedes", search.ListSedes)
	router.GET("/api/sedes/autocomplete", ratelim.RateLimit(search.AutocompleteSedes))
	router.POST("/api/sedes", ratelim.RateLimit(middleware.Authenticate(sedes.CreateSede)))

	router.GET("/api/sede/:id", sedes.GetSede)
	router.PUT("/api/sede/:id", middleware.Authenticate(sedes.UpdateSede))
	router.DELETE("/api/sede/:id", middleware.Authenticate(sedes.DeleteSede))

	router.GET("/api/escenario/:id", sedes.GetEscenario)
}

func AddReservaRoutes(router *httprouter.Router) {
	router.POST("/api/reservas", ratelim.RateLimit(middleware.Authenticate(reservas.CrearReserva)))
	router.GET("/api/reservas/mias", middleware.Authenticate(reservas.MisReservas))
	router.GET("/api/reservas/sede/:sedeId", middleware.Authenticate(reservas.ReservasDeSede))
	router.GET("/api/reservas/sede/:sedeId/updates", reservas.HandleReservaWS)

	router.GET("/api/reserva/:id", middleware.Authenticate(reservas.GetReserva))
	router.GET("/api/reserva/:id/recibo", ratelim.RateLimit(reservas.PrintRecibo))
	router.PATCH("/api/reserva/:id/estado", middleware.Authenticate(reservas.ActualizarEstado))
}
