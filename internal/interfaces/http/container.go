package http

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	billingUsecases "fixwise/internal/application/billing/usecases"
	marketplaceUsecases "fixwise/internal/application/marketplace/usecases"
	ticketUsecases "fixwise/internal/application/ticket/usecases"
	userUsecases "fixwise/internal/application/user/usecases"
	"fixwise/internal/domain/billing"
	"fixwise/internal/domain/shared/events"
	"fixwise/internal/domain/ticket"
	"fixwise/internal/infrastructure/auth"
	"fixwise/internal/infrastructure/config"
	"fixwise/internal/infrastructure/email"
	"fixwise/internal/infrastructure/ratelimit"
	"fixwise/internal/infrastructure/repository"
	billinghandlers "fixwise/internal/interfaces/http/handlers/billing"
	marketplacehandlers "fixwise/internal/interfaces/http/handlers/marketplace"
	tickethandlers "fixwise/internal/interfaces/http/handlers/ticket"
	userhandlers "fixwise/internal/interfaces/http/handlers/user"
	"fixwise/internal/interfaces/http/middleware"
	"fixwise/internal/shared/db"
	"fixwise/internal/shared/logger"
	"fixwise/internal/shared/services/markdown"
)

// Container wires repositories, use cases, handlers, and background
// components together and owns their lifecycle.
type Container struct {
	engine *gin.Engine
	db     *gorm.DB
	cfg    *config.Config
	log    logger.Interface
	redis  *redis.Client

	// Repositories
	ticketRepo       *repository.TicketRepository
	commentRepo      *repository.CommentRepository
	milestoneRepo    *repository.MilestoneRepository
	bidRepo          *repository.BidRepository
	workOrderRepo    *repository.WorkOrderRepository
	invoiceRepo      *repository.InvoiceRepository
	userRepo         *repository.UserRepository
	organizationRepo *repository.OrganizationRepository
	locationRepo     *repository.LocationRepository
	vendorRepo       *repository.VendorRepository
	tierRepo         *repository.TierRepository

	// Infrastructure services
	txManager       *db.TransactionManager
	hasher          *auth.BcryptPasswordHasher
	jwtService      *auth.JWTService
	dispatcher      *events.InMemoryDispatcher
	emailService    *email.SMTPEmailService
	ticketNotifier  *email.TicketNotifier
	markdownService markdown.MarkdownService
	ticketNumbers   ticket.NumberGenerator
	invoiceNumbers  billing.InvoiceNumberGenerator

	// Handlers
	ticketHandler  *tickethandlers.TicketHandler
	bidHandler     *marketplacehandlers.BidHandler
	billingHandler *billinghandlers.BillingHandler
	userHandler    *userhandlers.UserHandler

	// Middlewares
	authMiddleware *middleware.AuthMiddleware
	rateLimiter    *middleware.RateLimiter
}

func NewContainer(database *gorm.DB, cfg *config.Config, log logger.Interface) (*Container, error) {
	c := &Container{
		engine: gin.New(),
		db:     database,
		cfg:    cfg,
		log:    log,
	}

	c.initInfrastructure()
	c.initRepositories()
	c.initUseCasesAndHandlers()
	c.setupEngine()

	if err := c.ticketNotifier.Register(c.dispatcher); err != nil {
		return nil, err
	}

	return c, nil
}

func (c *Container) initInfrastructure() {
	c.redis = redis.NewClient(&redis.Options{
		Addr:     c.cfg.Redis.GetAddr(),
		Password: c.cfg.Redis.Password,
		DB:       c.cfg.Redis.DB,
	})

	c.txManager = db.NewTransactionManager(c.db)
	c.hasher = auth.NewBcryptPasswordHasher(c.cfg.Auth.Password.BcryptCost)
	c.jwtService = auth.NewJWTService(c.cfg.Auth.JWT.Secret, c.cfg.Auth.JWT.AccessExpMinutes)
	c.dispatcher = events.NewInMemoryDispatcher(256)
	c.markdownService = markdown.NewMarkdownService()
	c.ticketNumbers = ticket.NewDefaultNumberGenerator()
	c.invoiceNumbers = billing.NewDefaultInvoiceNumberGenerator()

	c.emailService = email.NewSMTPEmailService(email.SMTPConfig{
		Host:        c.cfg.Email.SMTPHost,
		Port:        c.cfg.Email.SMTPPort,
		Username:    c.cfg.Email.SMTPUser,
		Password:    c.cfg.Email.SMTPPassword,
		FromAddress: c.cfg.Email.FromAddress,
		FromName:    c.cfg.Email.FromName,
		BaseURL:     c.cfg.Server.BaseURL,
	})
}

func (c *Container) initRepositories() {
	c.ticketRepo = repository.NewTicketRepository(c.db)
	c.commentRepo = repository.NewCommentRepository(c.db)
	c.milestoneRepo = repository.NewMilestoneRepository(c.db)
	c.bidRepo = repository.NewBidRepository(c.db)
	c.workOrderRepo = repository.NewWorkOrderRepository(c.db)
	c.invoiceRepo = repository.NewInvoiceRepository(c.db)
	c.userRepo = repository.NewUserRepository(c.db)
	c.organizationRepo = repository.NewOrganizationRepository(c.db)
	c.locationRepo = repository.NewLocationRepository(c.db)
	c.vendorRepo = repository.NewVendorRepository(c.db)
	c.tierRepo = repository.NewTierRepository(c.db)

	c.ticketNotifier = email.NewTicketNotifier(c.emailService, c.ticketRepo, c.userRepo, c.log)
}

func (c *Container) initUseCasesAndHandlers() {
	createTicketUC := ticketUsecases.NewCreateTicketUseCase(c.ticketRepo, c.milestoneRepo, c.locationRepo, c.ticketNumbers, c.txManager, c.dispatcher, c.log)
	getTicketUC := ticketUsecases.NewGetTicketUseCase(c.ticketRepo, c.log)
	listTicketsUC := ticketUsecases.NewListTicketsUseCase(c.ticketRepo, c.log)
	updateTicketUC := ticketUsecases.NewUpdateTicketUseCase(c.ticketRepo, c.txManager, c.log)
	acceptTicketUC := ticketUsecases.NewAcceptTicketUseCase(c.ticketRepo, c.milestoneRepo, c.userRepo, c.tierRepo, c.txManager, c.dispatcher, c.log)
	rejectTicketUC := ticketUsecases.NewRejectTicketUseCase(c.ticketRepo, c.milestoneRepo, c.txManager, c.dispatcher, c.log)
	sendToMarketplaceUC := ticketUsecases.NewSendToMarketplaceUseCase(c.ticketRepo, c.milestoneRepo, c.txManager, c.dispatcher, c.log)
	startWorkUC := ticketUsecases.NewStartWorkUseCase(c.ticketRepo, c.milestoneRepo, c.txManager, c.dispatcher, c.log)
	completeWorkUC := ticketUsecases.NewCompleteWorkUseCase(c.ticketRepo, c.milestoneRepo, c.workOrderRepo, c.txManager, c.dispatcher, c.log)
	confirmCompletionUC := ticketUsecases.NewConfirmCompletionUseCase(c.ticketRepo, c.milestoneRepo, c.txManager, c.dispatcher, c.log)
	forceCloseUC := ticketUsecases.NewForceCloseUseCase(c.ticketRepo, c.milestoneRepo, c.txManager, c.dispatcher, c.log)
	addCommentUC := ticketUsecases.NewAddCommentUseCase(c.ticketRepo, c.commentRepo, c.markdownService, c.dispatcher, c.log)
	listCommentsUC := ticketUsecases.NewListCommentsUseCase(c.ticketRepo, c.commentRepo, c.log)
	listMilestonesUC := ticketUsecases.NewListMilestonesUseCase(c.ticketRepo, c.milestoneRepo, c.log)

	c.ticketHandler = tickethandlers.NewTicketHandler(
		createTicketUC, getTicketUC, listTicketsUC, updateTicketUC,
		acceptTicketUC, rejectTicketUC, sendToMarketplaceUC, startWorkUC,
		completeWorkUC, confirmCompletionUC, forceCloseUC,
		addCommentUC, listCommentsUC, listMilestonesUC,
	)

	submitBidUC := marketplaceUsecases.NewSubmitBidUseCase(c.ticketRepo, c.bidRepo, c.tierRepo, c.txManager, c.log)
	counterBidUC := marketplaceUsecases.NewCounterBidUseCase(c.ticketRepo, c.bidRepo, c.txManager, c.log)
	acceptBidUC := marketplaceUsecases.NewAcceptBidUseCase(c.ticketRepo, c.milestoneRepo, c.bidRepo, c.txManager, c.dispatcher, c.log)
	rejectBidUC := marketplaceUsecases.NewRejectBidUseCase(c.ticketRepo, c.bidRepo, c.txManager, c.log)
	listBidsUC := marketplaceUsecases.NewListBidsUseCase(c.ticketRepo, c.bidRepo, c.log)

	c.bidHandler = marketplacehandlers.NewBidHandler(submitBidUC, counterBidUC, acceptBidUC, rejectBidUC, listBidsUC)

	createInvoiceUC := billingUsecases.NewCreateInvoiceUseCase(c.ticketRepo, c.milestoneRepo, c.workOrderRepo, c.invoiceRepo, c.invoiceNumbers, c.txManager, c.dispatcher, c.log)
	payInvoiceUC := billingUsecases.NewPayInvoiceUseCase(c.invoiceRepo, c.txManager, c.log)
	getInvoiceUC := billingUsecases.NewGetInvoiceUseCase(c.invoiceRepo, c.log)
	listInvoicesUC := billingUsecases.NewListInvoicesUseCase(c.invoiceRepo, c.log)
	listWorkOrdersUC := billingUsecases.NewListWorkOrdersUseCase(c.ticketRepo, c.workOrderRepo, c.log)

	c.billingHandler = billinghandlers.NewBillingHandler(createInvoiceUC, payInvoiceUC, getInvoiceUC, listInvoicesUC, listWorkOrdersUC)

	loginUC := userUsecases.NewLoginUseCase(c.userRepo, c.hasher, c.jwtService, c.log)
	createUserUC := userUsecases.NewCreateUserUseCase(c.userRepo, c.organizationRepo, c.vendorRepo, c.hasher, c.log)

	c.userHandler = userhandlers.NewUserHandler(loginUC, createUserUC)

	c.authMiddleware = middleware.NewAuthMiddleware(c.jwtService, c.userRepo, c.log)

	if c.cfg.RateLimit.Enabled {
		c.rateLimiter = middleware.NewRateLimiter(
			ratelimit.NewRedisRateLimiter(c.redis),
			ratelimit.RateLimitConfig{
				RequestsPerMinute: c.cfg.RateLimit.RequestsPerMinute,
				RequestsPerHour:   c.cfg.RateLimit.RequestsPerHour,
			},
		)
	}
}

// Engine returns the configured gin engine.
func (c *Container) Engine() *gin.Engine {
	return c.engine
}

// Start brings up the background event dispatcher.
func (c *Container) Start() error {
	return c.dispatcher.Start()
}

// Shutdown stops background components and releases connections.
func (c *Container) Shutdown(ctx context.Context) error {
	if err := c.dispatcher.Stop(); err != nil {
		c.log.Warnw("failed to stop event dispatcher", "error", err)
	}
	if err := c.redis.Close(); err != nil {
		c.log.Warnw("failed to close redis client", "error", err)
	}
	return nil
}
