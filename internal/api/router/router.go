package router

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"seouldream/backend/config"
	"seouldream/backend/internal/api/handler"
	"seouldream/backend/internal/api/middleware"
	"seouldream/backend/pkg/jwt"
	"seouldream/backend/pkg/redis"
)

// 登录接口限流：同一 IP 每分钟最多 10 次
const (
	loginRateLimit  = 10
	loginRateWindow = time.Minute

	maxBodyBytes = 1 << 20 // 1MB
)

// Setup 初始化并返回 Gin 路由引擎
func Setup(cfg *config.Config, h *handler.Handler, jwtMgr *jwt.Manager, rdb *redis.Client, logger *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()

	// ── 全局中间件 ──
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.CORS(cfg.Server.CORS.AllowOrigins))
	r.Use(middleware.BodyLimit(maxBodyBytes))

	// ── 健康检查 ──
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// ── API v1 ──
	v1 := r.Group("/api/v1")
	{
		// 认证模块（无需认证）
		auth := v1.Group("/auth")
		{
			auth.POST("/login", middleware.RateLimit(rdb, loginRateLimit, loginRateWindow), h.Auth.Login)
			auth.POST("/refresh", h.Auth.Refresh)
		}

		// 需要认证的路由
		authorized := v1.Group("")
		authorized.Use(middleware.JWTAuth(jwtMgr, rdb))
		{
			// 认证模块（需要认证）
			authorized.POST("/auth/logout", h.Auth.Logout)
			authorized.GET("/auth/me", h.Auth.Me)
			authorized.PUT("/auth/password", h.Auth.ChangePassword)
			authorized.POST("/auth/accounts", middleware.RoleAuth("admin"), h.Auth.CreateAccount)

			// 成员模块
			members := authorized.Group("/members")
			{
				members.GET("", h.Member.ListMembers)
				members.GET("/:id", h.Member.GetMember)
				members.POST("", middleware.RoleAuth("admin", "leader"), h.Member.CreateMember)
				members.PUT("/:id", middleware.RoleAuth("admin", "leader"), h.Member.UpdateMember)
				members.DELETE("/:id", middleware.RoleAuth("admin"), h.Member.DeleteMember)
			}

			// 小组模块
			cells := authorized.Group("/cells")
			{
				cells.GET("", h.Cell.ListCells)
				cells.GET("/:id", h.Cell.GetCell)
				cells.GET("/:id/members", h.Cell.GetRoster)
				cells.POST("", middleware.RoleAuth("admin"), h.Cell.CreateCell)
				cells.PUT("/:id", middleware.RoleAuth("admin"), h.Cell.UpdateCell)
				cells.DELETE("/:id", middleware.RoleAuth("admin"), h.Cell.DeleteCell)
			}

			// 学期模块
			semesters := authorized.Group("/semesters")
			{
				semesters.GET("", h.Semester.ListSemesters)
				semesters.GET("/current", h.Semester.GetCurrentSemester)
				semesters.GET("/:id", h.Semester.GetSemester)
				semesters.GET("/:id/calendar.ics", h.Semester.WorshipCalendar)
				semesters.POST("", middleware.RoleAuth("admin"), h.Semester.CreateSemester)
				semesters.PUT("/:id", middleware.RoleAuth("admin"), h.Semester.UpdateSemester)
				semesters.PUT("/:id/activate", middleware.RoleAuth("admin"), h.Semester.ActivateSemester)
				semesters.DELETE("/:id", middleware.RoleAuth("admin"), h.Semester.DeleteSemester)
			}

			// 考勤模块
			attendance := authorized.Group("/attendance")
			{
				attendance.GET("", h.Attendance.ListAttendance)
				attendance.POST("/check", middleware.RoleAuth("admin", "leader"), h.Attendance.CheckIn)
				attendance.PUT("/:id", middleware.RoleAuth("admin", "leader"), h.Attendance.UpdateAttendance)
				attendance.DELETE("/:id", middleware.RoleAuth("admin"), h.Attendance.DeleteAttendance)
			}

			// 统计模块
			statistics := authorized.Group("/statistics")
			{
				statistics.GET("/attendance/matrix", h.Statistics.AttendanceMatrix)
				statistics.GET("/attendance/summary", h.Statistics.AttendanceSummary)
			}

			// 代祷模块
			prayers := authorized.Group("/prayers")
			{
				prayers.GET("", h.Prayer.ListPrayers)
				prayers.GET("/summary", h.Prayer.PrayerSummary)
				prayers.GET("/:id", h.Prayer.GetPrayer)
				prayers.POST("", h.Prayer.CreatePrayer)
				prayers.PUT("/:id", h.Prayer.UpdatePrayer)
				prayers.DELETE("/:id", middleware.RoleAuth("admin", "leader"), h.Prayer.DeletePrayer)
			}

			// 导出模块
			export := authorized.Group("/export")
			{
				export.GET("/attendance", middleware.RoleAuth("admin", "leader"), h.Export.ExportAttendanceMatrix)
			}
		}
	}

	return r
}
