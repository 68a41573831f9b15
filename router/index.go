package router

import (
	"cinema_ops/handler"
	"cinema_ops/middleware"
	"cinema_ops/validate"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func SetupRoutes(app *fiber.App) {
	api := app.Group("/api", logger.New())
	v1 := api.Group("/v1", logger.New())

	room := v1.Group("/room", logger.New())
	room.Get("/", handler.GetRooms)
	room.Get("/:roomId", validate.GetById("roomId"), handler.GetRoomById)
	room.Get("/:roomId/map", handler.GetRoomMap)
	room.Post("/", middleware.StaffOnly(), validate.CreateRoom(), handler.CreateRoom)
	room.Put("/:roomId", middleware.StaffOnly(), validate.GetById("roomId"), validate.EditRoom(), handler.EditRoom)
	room.Delete("/", middleware.StaffOnly(), validate.Delete(), handler.DeleteRoom)

	movie := v1.Group("/movie", logger.New())
	movie.Get("/", handler.GetMovies)
	movie.Get("/:slug", handler.GetMovieBySlug)
	movie.Post("/", middleware.StaffOnly(), validate.CreateMovie(), handler.CreateMovie)
	movie.Put("/:movieId", middleware.StaffOnly(), validate.GetById("movieId"), validate.EditMovie(), handler.EditMovie)
	movie.Post("/:movieId/poster", middleware.StaffOnly(), handler.UploadMoviePoster)
	movie.Delete("/", middleware.StaffOnly(), validate.Delete(), handler.DeleteMovie)

	screening := v1.Group("/screening", logger.New())
	screening.Get("/", handler.GetScreenings)
	screening.Get("/:code", handler.GetScreeningByCode)
	screening.Post("/", middleware.StaffOnly(), validate.CreateScreening(), handler.CreateScreening)

	// Seat holds and purchase are screening-scoped by public code.
	screening.Post("/:code/hold", middleware.OptionalCustomer(), handler.HoldSeat)
	screening.Post("/:code/release", handler.ReleaseSeat)
	screening.Post("/:code/ticket", middleware.OptionalCustomer(), validate.PurchaseTicket(), handler.PurchaseTicket)
	screening.Get("/seats/:screeningId", websocket.New(handler.SeatWebsocket))

	ticket := v1.Group("/ticket", logger.New())
	ticket.Get("/", middleware.StaffOnly(), handler.GetTickets)
	ticket.Get("/:ticketCode", handler.GetTicketByCode)
	ticket.Get("/:ticketCode/receipt", handler.GetTicketReceipt)
	ticket.Get("/:ticketCode/qr", handler.GetTicketQR)
	ticket.Post("/checkin", middleware.StaffOnly(), handler.CheckInTicket)
	ticket.Post("/:ticketCode/cancel", middleware.StaffOnly(), handler.CancelTicket)

	customer := v1.Group("/customer", logger.New())
	customer.Post("/", validate.RegisterCustomer(), handler.RegisterCustomer)
	customer.Get("/", middleware.StaffOnly(), handler.GetCustomers)
	customer.Get("/:customerId", middleware.StaffOnly(), handler.GetCustomerById)
	customer.Get("/:customerId/points", handler.GetCustomerPoints)
	customer.Put("/:customerId", middleware.StaffOnly(), validate.GetById("customerId"), validate.EditCustomer(), handler.EditCustomer)

	concession := v1.Group("/concession", logger.New())
	concession.Get("/", handler.GetConcessionItems)
	concession.Post("/order", validate.CreateFoodOrder(), handler.CreateFoodOrder)
	concession.Get("/order", middleware.StaffOnly(), handler.GetFoodOrders)

	rental := v1.Group("/rental", logger.New())
	rental.Get("/", middleware.StaffOnly(), handler.GetRentals)
	rental.Post("/", middleware.StaffOnly(), validate.CreateRental(), handler.CreateRental)
	rental.Post("/:rentalId/cancel", middleware.StaffOnly(), validate.GetById("rentalId"), handler.CancelRental)
}
