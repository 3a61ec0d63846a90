// Package http is the inbound REST adapter. It translates echo requests into
// commands and queries, maps domain errors to status codes, and enforces the
// caller-scoping rules: principal identity always comes from the verified
// token, and non-admin callers only see their own parcels and payments.
package http

import (
	"errors"
	"net/http"

	"zapshift/internal/core/application/usecases/commands"
	"zapshift/internal/core/application/usecases/queries"
	"zapshift/internal/core/domain/model/kernel"
	"zapshift/internal/core/domain/model/rider"
	"zapshift/internal/core/domain/model/user"
	"zapshift/internal/core/ports"
	"zapshift/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	registerUserHandler     commands.RegisterUserCommandHandler
	setUserRoleHandler      commands.SetUserRoleCommandHandler
	createRiderHandler      commands.CreateRiderCommandHandler
	setRiderApprovalHandler commands.SetRiderApprovalCommandHandler
	removeRiderHandler      commands.RemoveRiderCommandHandler
	createParcelHandler     commands.CreateParcelCommandHandler
	assignRiderHandler      commands.AssignRiderCommandHandler
	removeParcelHandler     commands.RemoveParcelCommandHandler
	initiateCheckoutHandler commands.InitiateCheckoutCommandHandler
	reconcilePaymentHandler commands.ReconcilePaymentCommandHandler

	// Query handlers
	listUsersHandler          queries.ListUsersQueryHandler
	getUserHandler            queries.GetUserQueryHandler
	getUserRoleHandler        queries.GetUserRoleQueryHandler
	listRidersHandler         queries.ListRidersQueryHandler
	listParcelsHandler        queries.ListParcelsQueryHandler
	getParcelHandler          queries.GetParcelQueryHandler
	listPaymentsHandler       queries.ListPaymentsQueryHandler
	getInconsistenciesHandler queries.GetInconsistenciesQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	registerUserHandler commands.RegisterUserCommandHandler,
	setUserRoleHandler commands.SetUserRoleCommandHandler,
	createRiderHandler commands.CreateRiderCommandHandler,
	setRiderApprovalHandler commands.SetRiderApprovalCommandHandler,
	removeRiderHandler commands.RemoveRiderCommandHandler,
	createParcelHandler commands.CreateParcelCommandHandler,
	assignRiderHandler commands.AssignRiderCommandHandler,
	removeParcelHandler commands.RemoveParcelCommandHandler,
	initiateCheckoutHandler commands.InitiateCheckoutCommandHandler,
	reconcilePaymentHandler commands.ReconcilePaymentCommandHandler,
	listUsersHandler queries.ListUsersQueryHandler,
	getUserHandler queries.GetUserQueryHandler,
	getUserRoleHandler queries.GetUserRoleQueryHandler,
	listRidersHandler queries.ListRidersQueryHandler,
	listParcelsHandler queries.ListParcelsQueryHandler,
	getParcelHandler queries.GetParcelQueryHandler,
	listPaymentsHandler queries.ListPaymentsQueryHandler,
	getInconsistenciesHandler queries.GetInconsistenciesQueryHandler,
) *Server {
	return &Server{
		registerUserHandler:       registerUserHandler,
		setUserRoleHandler:        setUserRoleHandler,
		createRiderHandler:        createRiderHandler,
		setRiderApprovalHandler:   setRiderApprovalHandler,
		removeRiderHandler:        removeRiderHandler,
		createParcelHandler:       createParcelHandler,
		assignRiderHandler:        assignRiderHandler,
		removeParcelHandler:       removeParcelHandler,
		initiateCheckoutHandler:   initiateCheckoutHandler,
		reconcilePaymentHandler:   reconcilePaymentHandler,
		listUsersHandler:          listUsersHandler,
		getUserHandler:            getUserHandler,
		getUserRoleHandler:        getUserRoleHandler,
		listRidersHandler:         listRidersHandler,
		listParcelsHandler:        listParcelsHandler,
		getParcelHandler:          getParcelHandler,
		listPaymentsHandler:       listPaymentsHandler,
		getInconsistenciesHandler: getInconsistenciesHandler,
	}
}

// RegisterRoutes wires all API routes onto the echo instance. Routes are
// grouped into public, authenticated, and admin-only tiers.
func (s *Server) RegisterRoutes(e *echo.Echo, auth *AuthMiddleware) {
	api := e.Group("/api/v1")

	api.GET("/health", s.GetHealth)
	api.POST("/users", s.RegisterUser)

	authed := api.Group("", auth.RequireAuth)
	authed.GET("/users/role", s.GetMyRole)
	authed.POST("/riders", s.CreateRider)
	authed.POST("/parcels", s.CreateParcel)
	authed.GET("/parcels", s.GetParcels)
	authed.GET("/parcels/:parcelId", s.GetParcel)
	authed.DELETE("/parcels/:parcelId", s.DeleteParcel)
	authed.POST("/payments/checkout-session", s.CreateCheckoutSession)
	authed.POST("/payments/reconcile", s.ReconcilePayment)
	authed.GET("/payments", s.GetPayments)

	admin := api.Group("", auth.RequireAuth, auth.RequireAdmin)
	admin.GET("/users", s.GetUsers)
	admin.GET("/users/:userId", s.GetUser)
	admin.PATCH("/users/:userId/role", s.SetUserRole)
	admin.GET("/riders", s.GetRiders)
	admin.PATCH("/riders/:riderId/approval", s.SetRiderApproval)
	admin.DELETE("/riders/:riderId", s.DeleteRider)
	admin.PATCH("/parcels/:parcelId/assign", s.AssignRider)
	admin.GET("/audit/inconsistencies", s.GetInconsistencies)
}

// GetHealth handles GET /api/v1/health.
func (s *Server) GetHealth(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, HealthResponse{Status: "ok"})
}

// RegisterUser handles POST /api/v1/users - registers a new account.
// Repeat registrations of the same email return 409 without side effects.
func (s *Server) RegisterUser(ctx echo.Context) error {
	var body RegisterUserRequest
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewRegisterUserCommand(body.Email, body.Name)
	if err != nil {
		return badRequest(ctx, "Invalid user data: "+err.Error())
	}

	if handleErr := s.registerUserHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return writeError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusCreated)
}

// GetMyRole handles GET /api/v1/users/role - resolves the caller's role.
// Accounts without a registration record resolve to the default role.
func (s *Server) GetMyRole(ctx echo.Context) error {
	query, err := queries.NewGetUserRoleQuery(principalEmail(ctx))
	if err != nil {
		return badRequest(ctx, "Invalid role query: "+err.Error())
	}

	role, err := s.getUserRoleHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, RoleResponse{Role: role})
}

// GetUsers handles GET /api/v1/users - lists accounts, optionally filtered by
// a case-insensitive email or name fragment.
func (s *Server) GetUsers(ctx echo.Context) error {
	query := queries.NewListUsersQuery(ctx.QueryParam("search"))

	users, err := s.listUsersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]UserResponse, len(users))
	for i, account := range users {
		response[i] = UserResponse{
			ID:        account.ID.String(),
			Email:     account.Email,
			Name:      account.Name,
			Role:      account.Role,
			CreatedAt: account.CreatedAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetUser handles GET /api/v1/users/:userId - reads one account.
func (s *Server) GetUser(ctx echo.Context) error {
	userID, err := kernel.UUIDFromString(ctx.Param("userId"))
	if err != nil {
		return badRequest(ctx, "Invalid user ID")
	}

	query, err := queries.NewGetUserQuery(userID)
	if err != nil {
		return badRequest(ctx, "Invalid user query: "+err.Error())
	}

	account, err := s.getUserHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, UserResponse{
		ID:        account.ID.String(),
		Email:     account.Email,
		Name:      account.Name,
		Role:      account.Role,
		CreatedAt: account.CreatedAt,
	})
}

// SetUserRole handles PATCH /api/v1/users/:userId/role.
func (s *Server) SetUserRole(ctx echo.Context) error {
	userID, err := kernel.UUIDFromString(ctx.Param("userId"))
	if err != nil {
		return badRequest(ctx, "Invalid user ID")
	}

	var body SetUserRoleRequest
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	role, err := user.RoleFromString(body.Role)
	if err != nil {
		return badRequest(ctx, "Invalid role: "+err.Error())
	}

	cmd, err := commands.NewSetUserRoleCommand(userID, role)
	if err != nil {
		return badRequest(ctx, "Invalid role change: "+err.Error())
	}

	if handleErr := s.setUserRoleHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return writeError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CreateRider handles POST /api/v1/riders - submits a rider application.
func (s *Server) CreateRider(ctx echo.Context) error {
	var body CreateRiderRequest
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewCreateRiderCommand(body.Name, body.Email, body.District)
	if err != nil {
		return badRequest(ctx, "Invalid rider data: "+err.Error())
	}

	if handleErr := s.createRiderHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return writeError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusCreated)
}

// GetRiders handles GET /api/v1/riders - lists riders with optional
// approvalStatus, district, and workStatus filters.
func (s *Server) GetRiders(ctx echo.Context) error {
	query, err := queries.NewListRidersQuery(
		ctx.QueryParam("approvalStatus"),
		ctx.QueryParam("district"),
		ctx.QueryParam("workStatus"),
	)
	if err != nil {
		return badRequest(ctx, "Invalid rider filter: "+err.Error())
	}

	riders, err := s.listRidersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]RiderResponse, len(riders))
	for i, applicant := range riders {
		response[i] = RiderResponse{
			ID:             applicant.ID.String(),
			Name:           applicant.Name,
			Email:          applicant.Email,
			District:       applicant.District,
			ApprovalStatus: applicant.ApprovalStatus,
			WorkStatus:     applicant.WorkStatus,
			CreatedAt:      applicant.CreatedAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// SetRiderApproval handles PATCH /api/v1/riders/:riderId/approval - decides a
// pending application. Approval also promotes the rider's account when one is
// registered.
func (s *Server) SetRiderApproval(ctx echo.Context) error {
	riderID, err := kernel.UUIDFromString(ctx.Param("riderId"))
	if err != nil {
		return badRequest(ctx, "Invalid rider ID")
	}

	var body SetRiderApprovalRequest
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	decision, err := rider.ApprovalStatusFromString(body.Status)
	if err != nil {
		return badRequest(ctx, "Invalid approval status: "+err.Error())
	}

	cmd, err := commands.NewSetRiderApprovalCommand(riderID, decision)
	if err != nil {
		return badRequest(ctx, "Invalid approval decision: "+err.Error())
	}

	if handleErr := s.setRiderApprovalHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return writeError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// DeleteRider handles DELETE /api/v1/riders/:riderId.
func (s *Server) DeleteRider(ctx echo.Context) error {
	riderID, err := kernel.UUIDFromString(ctx.Param("riderId"))
	if err != nil {
		return badRequest(ctx, "Invalid rider ID")
	}

	cmd, err := commands.NewRemoveRiderCommand(riderID)
	if err != nil {
		return badRequest(ctx, "Invalid removal request: "+err.Error())
	}

	if handleErr := s.removeRiderHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return writeError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CreateParcel handles POST /api/v1/parcels. The sender is always the
// authenticated caller.
func (s *Server) CreateParcel(ctx echo.Context) error {
	var body CreateParcelRequest
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewCreateParcelCommand(body.Name, principalEmail(ctx), body.Cost)
	if err != nil {
		return badRequest(ctx, "Invalid parcel data: "+err.Error())
	}

	if handleErr := s.createParcelHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return writeError(ctx, handleErr)
	}

	return ctx.JSON(http.StatusCreated, map[string]string{"id": cmd.ParcelID().String()})
}

// GetParcels handles GET /api/v1/parcels - lists parcels newest first with an
// optional deliveryStatus filter. Non-admin callers only see their own
// parcels; asking for another sender's email is forbidden.
func (s *Server) GetParcels(ctx echo.Context) error {
	senderEmail, err := s.scopedEmail(ctx)
	if err != nil {
		return err
	}

	query, err := queries.NewListParcelsQuery(senderEmail, ctx.QueryParam("deliveryStatus"))
	if err != nil {
		return badRequest(ctx, "Invalid parcel filter: "+err.Error())
	}

	parcels, err := s.listParcelsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]ParcelResponse, len(parcels))
	for i, parcel := range parcels {
		response[i] = toParcelResponse(parcel)
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetParcel handles GET /api/v1/parcels/:parcelId. Only the sender or an
// admin may read a parcel.
func (s *Server) GetParcel(ctx echo.Context) error {
	parcel, err := s.loadOwnedParcel(ctx)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, toParcelResponse(parcel))
}

// DeleteParcel handles DELETE /api/v1/parcels/:parcelId. Only the sender or
// an admin may remove a parcel.
func (s *Server) DeleteParcel(ctx echo.Context) error {
	parcel, err := s.loadOwnedParcel(ctx)
	if err != nil {
		return err
	}

	cmd, err := commands.NewRemoveParcelCommand(parcel.ID)
	if err != nil {
		return badRequest(ctx, "Invalid removal request: "+err.Error())
	}

	if handleErr := s.removeParcelHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return writeError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// AssignRider handles PATCH /api/v1/parcels/:parcelId/assign - dispatches a
// paid parcel to an available rider.
func (s *Server) AssignRider(ctx echo.Context) error {
	parcelID, err := kernel.UUIDFromString(ctx.Param("parcelId"))
	if err != nil {
		return badRequest(ctx, "Invalid parcel ID")
	}

	var body AssignRiderRequest
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	riderID, err := kernel.UUIDFromString(body.RiderID)
	if err != nil {
		return badRequest(ctx, "Invalid rider ID")
	}

	cmd, err := commands.NewAssignRiderCommand(parcelID, riderID)
	if err != nil {
		return badRequest(ctx, "Invalid assignment: "+err.Error())
	}

	if handleErr := s.assignRiderHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return writeError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CreateCheckoutSession handles POST /api/v1/payments/checkout-session.
// The payer is the authenticated caller.
func (s *Server) CreateCheckoutSession(ctx echo.Context) error {
	var body CreateCheckoutSessionRequest
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	parcelID, err := kernel.UUIDFromString(body.ParcelID)
	if err != nil {
		return badRequest(ctx, "Invalid parcel ID")
	}

	cmd, err := commands.NewInitiateCheckoutCommand(parcelID, body.ParcelName, body.Cost, principalEmail(ctx))
	if err != nil {
		return badRequest(ctx, "Invalid checkout data: "+err.Error())
	}

	session, err := s.initiateCheckoutHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return ctx.JSON(http.StatusBadGateway, Error{
			Code:    http.StatusBadGateway,
			Message: "Failed to open checkout session",
		})
	}

	return ctx.JSON(http.StatusCreated, CheckoutSessionResponse{
		SessionID: session.ID,
		URL:       session.RedirectURL,
	})
}

// ReconcilePayment handles POST /api/v1/payments/reconcile - settles a
// completed checkout session. Safe to call repeatedly for the same session.
func (s *Server) ReconcilePayment(ctx echo.Context) error {
	var body ReconcilePaymentRequest
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewReconcilePaymentCommand(body.SessionID)
	if err != nil {
		return badRequest(ctx, "Invalid reconciliation request: "+err.Error())
	}

	result, err := s.reconcilePaymentHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, ReconcilePaymentResponse{
		Success:       result.Success,
		AlreadyDone:   result.AlreadyDone,
		TrackingID:    result.TrackingID.String(),
		TransactionID: result.TransactionID,
		ParcelID:      result.ParcelID.String(),
	})
}

// GetPayments handles GET /api/v1/payments - lists ledger records newest
// first. Non-admin callers only see their own payments; asking for another
// payer's email is forbidden.
func (s *Server) GetPayments(ctx echo.Context) error {
	payerEmail, err := s.scopedEmail(ctx)
	if err != nil {
		return err
	}

	query := queries.NewListPaymentsQuery(payerEmail)

	payments, err := s.listPaymentsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]PaymentResponse, len(payments))
	for i, record := range payments {
		response[i] = PaymentResponse{
			ID:            record.ID.String(),
			Amount:        record.Amount,
			Currency:      record.Currency,
			PayerEmail:    record.PayerEmail,
			ParcelID:      record.ParcelID.String(),
			ParcelName:    record.ParcelName,
			TransactionID: record.TransactionID,
			TrackingID:    record.TrackingID,
			PaidAt:        record.PaidAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetInconsistencies handles GET /api/v1/audit/inconsistencies - surfaces
// parcels whose payment or assignment state disagrees with the ledger and
// rider records.
func (s *Server) GetInconsistencies(ctx echo.Context) error {
	findings, err := s.getInconsistenciesHandler.Handle(
		ctx.Request().Context(),
		queries.NewGetInconsistenciesQuery(),
	)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]InconsistencyResponse, len(findings))
	for i, finding := range findings {
		response[i] = InconsistencyResponse{
			ParcelID:   finding.ParcelID.String(),
			TrackingID: finding.TrackingID,
			Kind:       finding.Kind,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// scopedEmail resolves the email list scope for the caller: non-admins are
// pinned to their own email and get 403 when they request someone else's,
// admins may scope freely or not at all. On failure the response has already
// been written and the returned error terminates the handler.
func (s *Server) scopedEmail(ctx echo.Context) (string, error) {
	requested := ctx.QueryParam("email")
	principal := principalEmail(ctx)

	if requested == principal {
		return requested, nil
	}

	admin, err := s.callerIsAdmin(ctx)
	if err != nil {
		return "", writeError(ctx, err)
	}
	if admin {
		return requested, nil
	}

	if requested != "" {
		return "", ctx.JSON(http.StatusForbidden, Error{
			Code:    http.StatusForbidden,
			Message: "Cannot list another account's records",
		})
	}

	return principal, nil
}

// loadOwnedParcel resolves the :parcelId path parameter and enforces that the
// caller is the parcel's sender or an admin. On failure the response has
// already been written and the returned error terminates the handler.
func (s *Server) loadOwnedParcel(ctx echo.Context) (queries.ParcelResponse, error) {
	parcelID, err := kernel.UUIDFromString(ctx.Param("parcelId"))
	if err != nil {
		return queries.ParcelResponse{}, badRequest(ctx, "Invalid parcel ID")
	}

	query, err := queries.NewGetParcelQuery(parcelID)
	if err != nil {
		return queries.ParcelResponse{}, badRequest(ctx, "Invalid parcel query: "+err.Error())
	}

	parcel, err := s.getParcelHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return queries.ParcelResponse{}, writeError(ctx, err)
	}

	if parcel.SenderEmail != principalEmail(ctx) {
		admin, adminErr := s.callerIsAdmin(ctx)
		if adminErr != nil {
			return queries.ParcelResponse{}, writeError(ctx, adminErr)
		}
		if !admin {
			return queries.ParcelResponse{}, ctx.JSON(http.StatusForbidden, Error{
				Code:    http.StatusForbidden,
				Message: "Parcel belongs to another sender",
			})
		}
	}

	return parcel, nil
}

func (s *Server) callerIsAdmin(ctx echo.Context) (bool, error) {
	query, err := queries.NewGetUserRoleQuery(principalEmail(ctx))
	if err != nil {
		return false, err
	}

	role, err := s.getUserRoleHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return false, err
	}

	return role == user.RoleAdmin.String(), nil
}

func toParcelResponse(parcel queries.ParcelResponse) ParcelResponse {
	return ParcelResponse{
		ID:             parcel.ID.String(),
		Name:           parcel.Name,
		SenderEmail:    parcel.SenderEmail,
		Cost:           parcel.Cost,
		DeliveryStatus: parcel.DeliveryStatus,
		PaymentStatus:  parcel.PaymentStatus,
		TrackingID:     parcel.TrackingID,
		RiderID:        parcel.RiderID,
		RiderName:      parcel.RiderName,
		RiderEmail:     parcel.RiderEmail,
		CreatedAt:      parcel.CreatedAt,
	}
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, Error{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

// writeError folds domain sentinels into status codes. Unknown errors become
// 500 without leaking internals.
func writeError(ctx echo.Context, err error) error {
	status := http.StatusInternalServerError
	message := "Internal server error"

	switch {
	case errors.Is(err, errs.ErrObjectNotFound), errors.Is(err, ports.ErrSessionNotFound):
		status = http.StatusNotFound
		message = err.Error()
	case errors.Is(err, errs.ErrObjectAlreadyExists):
		status = http.StatusConflict
		message = err.Error()
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		status = http.StatusBadRequest
		message = err.Error()
	}

	return ctx.JSON(status, Error{Code: status, Message: message})
}
