package routes

import (
	"fmt"

	"salesdesk-backend/internal/api/handlers"
	"salesdesk-backend/internal/api/middleware"
	"salesdesk-backend/internal/auth"
	"salesdesk-backend/internal/config"
	"salesdesk-backend/internal/repository"
	"salesdesk-backend/internal/service"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// SetupRoutes configures all the routes for the application
func SetupRoutes(db *gorm.DB, cfg *config.Config) (*gin.Engine, error) {
	router := gin.New()

	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.CORS(cfg))

	validator := service.NewValidator()

	// Repositories
	organizationRepo := repository.NewOrganizationRepository(db)
	membershipRepo := repository.NewMembershipRepository(db)
	inviteRepo := repository.NewInviteRepository(db)
	contactRepo := repository.NewContactRepository(db)
	sequenceRepo := repository.NewSequenceRepository(db)
	enrollmentRepo := repository.NewEnrollmentRepository(db)
	assignmentRepo := repository.NewAssignmentRepository(db)
	notificationRepo := repository.NewNotificationRepository(db)
	preferenceRepo := repository.NewPreferenceRepository(db)

	// Services
	emailSender := service.NewEmailSender(cfg)
	notificationService := service.NewNotificationService(notificationRepo, validator)
	organizationService := service.NewOrganizationService(organizationRepo, validator)
	membershipService := service.NewMembershipService(membershipRepo, validator)
	inviteService := service.NewInviteService(inviteRepo, membershipRepo, organizationRepo, notificationService, emailSender, cfg, validator)
	enrollmentService := service.NewEnrollmentService(sequenceRepo, enrollmentRepo, contactRepo, membershipRepo, notificationService, validator)
	contactService := service.NewContactService(contactRepo, membershipRepo, enrollmentService, notificationService, validator)
	sequenceService := service.NewSequenceService(sequenceRepo, enrollmentRepo, assignmentRepo, contactRepo, membershipRepo, notificationService, validator)
	assignmentService := service.NewAssignmentService(assignmentRepo, enrollmentRepo, sequenceRepo, contactRepo, membershipRepo, notificationService, validator)
	preferenceService := service.NewPreferenceService(preferenceRepo, validator)
	digestService := service.NewDigestService(preferenceRepo, membershipRepo, notificationRepo, assignmentRepo, contactRepo, emailSender, cfg)

	authService, err := auth.NewAuthService(cfg.JWTSecret, cfg.JWTIssuer)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize auth service: %w", err)
	}
	authMiddleware := auth.NewAuthMiddleware(authService)

	// Handlers
	healthHandler := handlers.NewHealthHandler(db)
	organizationHandler := handlers.NewOrganizationHandler(organizationService)
	memberHandler := handlers.NewMemberHandler(membershipService)
	inviteHandler := handlers.NewInviteHandler(inviteService)
	contactHandler := handlers.NewContactHandler(contactService)
	sequenceHandler := handlers.NewSequenceHandler(sequenceService)
	enrollmentHandler := handlers.NewEnrollmentHandler(enrollmentService)
	assignmentHandler := handlers.NewAssignmentHandler(assignmentService)
	notificationHandler := handlers.NewNotificationHandler(notificationService)
	preferenceHandler := handlers.NewPreferenceHandler(preferenceService)
	digestHandler := handlers.NewDigestHandler(digestService)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Internal webhooks called by the platform scheduler
	webhooks := router.Group("/internal/webhooks", middleware.RequireWebhookSecret(cfg.DigestWebhookSecret))
	{
		webhooks.POST("/weekly-digest", digestHandler.WeeklyDigest)
	}

	// Invite links are previewed before sign-in
	public := router.Group("/api/v1")
	{
		public.GET("/invites/:token", inviteHandler.PreviewInvite)
	}

	v1 := router.Group("/api/v1", authMiddleware.RequireAuth())
	{
		v1.POST("/invites/redeem", inviteHandler.RedeemInvite)

		me := v1.Group("/me")
		{
			me.GET("/preferences", preferenceHandler.GetPreferences)
			me.PATCH("/preferences", preferenceHandler.UpdatePreferences)
		}

		v1.GET("/organizations", organizationHandler.ListOrganizations)
		v1.POST("/organizations", organizationHandler.CreateOrganization)

		org := v1.Group("/organizations/:orgId", middleware.RequireMembership(membershipService))
		{
			org.GET("", organizationHandler.GetOrganization)
			org.PATCH("", organizationHandler.UpdateOrganization)

			members := org.Group("/members")
			{
				members.GET("", memberHandler.ListMembers)
				members.PATCH("/:memberId", memberHandler.UpdateMember)
				members.DELETE("/:memberId", memberHandler.RemoveMember)
			}

			invites := org.Group("/invites")
			{
				invites.GET("", inviteHandler.ListInvites)
				invites.POST("", inviteHandler.CreateInvite)
				invites.DELETE("/:inviteId", inviteHandler.RevokeInvite)
			}

			contacts := org.Group("/contacts")
			{
				contacts.GET("", contactHandler.ListContacts)
				contacts.POST("", contactHandler.CreateContact)
				contacts.GET("/board", contactHandler.Board)
				contacts.POST("/bulk", contactHandler.BulkContacts)
				contacts.POST("/import", contactHandler.ImportContacts)
				contacts.GET("/:contactId", contactHandler.GetContact)
				contacts.PATCH("/:contactId", contactHandler.UpdateContact)
				contacts.DELETE("/:contactId", contactHandler.DeleteContact)
			}

			sequences := org.Group("/sequences")
			{
				sequences.GET("", sequenceHandler.ListSequences)
				sequences.POST("", sequenceHandler.CreateSequence)
				sequences.GET("/:sequenceId", sequenceHandler.GetSequence)
				sequences.PATCH("/:sequenceId", sequenceHandler.UpdateSequence)
				sequences.DELETE("/:sequenceId", sequenceHandler.ArchiveSequence)
				sequences.POST("/:sequenceId/versions", sequenceHandler.CreateVersion)
				sequences.GET("/:sequenceId/versions/:versionId", sequenceHandler.GetVersion)
				sequences.GET("/:sequenceId/enrollments", enrollmentHandler.ListEnrollments)
				sequences.POST("/:sequenceId/enrollments", enrollmentHandler.Enroll)
			}

			versions := org.Group("/versions/:versionId")
			{
				versions.POST("/steps", sequenceHandler.AddStep)
				versions.PUT("/steps/order", sequenceHandler.ReorderSteps)
				versions.POST("/publish", sequenceHandler.PublishVersion)
			}

			steps := org.Group("/steps")
			{
				steps.PATCH("/:stepId", sequenceHandler.UpdateStep)
				steps.DELETE("/:stepId", sequenceHandler.DeleteStep)
			}

			enrollments := org.Group("/enrollments")
			{
				enrollments.POST("/:enrollmentId/pause", enrollmentHandler.PauseEnrollment)
				enrollments.POST("/:enrollmentId/resume", enrollmentHandler.ResumeEnrollment)
				enrollments.DELETE("/:enrollmentId", enrollmentHandler.RemoveEnrollment)
			}

			assignments := org.Group("/assignments")
			{
				assignments.GET("", assignmentHandler.ListAssignments)
				assignments.POST("/:assignmentId/snooze", assignmentHandler.SnoozeAssignment)
				assignments.POST("/:assignmentId/unsnooze", assignmentHandler.UnsnoozeAssignment)
				assignments.POST("/:assignmentId/complete", assignmentHandler.CompleteAssignment)
			}

			notifications := org.Group("/notifications")
			{
				notifications.GET("", notificationHandler.Feed)
				notifications.GET("/counts", notificationHandler.Counts)
				notifications.POST("/read-all", notificationHandler.ReadAll)
				notifications.GET("/mutes", notificationHandler.ListMutes)
				notifications.POST("/mutes", notificationHandler.CreateMute)
				notifications.DELETE("/mutes/:muteId", notificationHandler.DeleteMute)
				notifications.POST("/:notificationId/read", notificationHandler.MarkRead)
				notifications.POST("/:notificationId/unread", notificationHandler.MarkUnread)
				notifications.POST("/:notificationId/hide", notificationHandler.Hide)
				notifications.PUT("/:notificationId/bookmark", notificationHandler.Bookmark)
				notifications.DELETE("/:notificationId/bookmark", notificationHandler.Unbookmark)
			}
		}
	}

	return router, nil
}
