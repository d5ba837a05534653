package router

import (
	"github.com/IsabelaBoudoux/Sail1/internal/handler"
	"github.com/IsabelaBoudoux/Sail1/internal/middleware"
	"github.com/gin-gonic/gin"
)

type Deps struct {
	HomeHandler         *handler.HomeHandler
	MemberHandler       *handler.MemberHandler
	BoatTypeHandler     *handler.BoatTypeHandler
	ClubTaskHandler     *handler.ClubTaskHandler
	FeeStructureHandler *handler.FeeStructureHandler
	MembershipHandler   *handler.MembershipHandler
}

func Setup(r *gin.Engine, deps Deps) {
	r.Use(middleware.RequestLogger())

	r.GET("/", deps.HomeHandler.Index)

	members := r.Group("/members")
	{
		members.GET("", deps.MemberHandler.Index)
		members.GET("/new", deps.MemberHandler.New)
		members.POST("", deps.MemberHandler.Create)
		members.GET("/:id", deps.MemberHandler.Details)
		members.GET("/:id/edit", deps.MemberHandler.Edit)
		members.POST("/:id/edit", deps.MemberHandler.Update)
		members.GET("/:id/delete", deps.MemberHandler.Delete)
		members.POST("/:id/delete", deps.MemberHandler.Destroy)
	}

	boatTypes := r.Group("/boat-types")
	{
		boatTypes.GET("", deps.BoatTypeHandler.Index)
		boatTypes.GET("/new", deps.BoatTypeHandler.New)
		boatTypes.POST("", deps.BoatTypeHandler.Create)
		boatTypes.GET("/:id", deps.BoatTypeHandler.Details)
		boatTypes.GET("/:id/edit", deps.BoatTypeHandler.Edit)
		boatTypes.POST("/:id/edit", deps.BoatTypeHandler.Update)
		boatTypes.GET("/:id/delete", deps.BoatTypeHandler.Delete)
		boatTypes.POST("/:id/delete", deps.BoatTypeHandler.Destroy)
	}

	tasks := r.Group("/tasks")
	{
		tasks.GET("", deps.ClubTaskHandler.Index)
		tasks.GET("/new", deps.ClubTaskHandler.New)
		tasks.POST("", deps.ClubTaskHandler.Create)
		tasks.GET("/:id", deps.ClubTaskHandler.Details)
		tasks.GET("/:id/edit", deps.ClubTaskHandler.Edit)
		tasks.POST("/:id/edit", deps.ClubTaskHandler.Update)
		tasks.GET("/:id/delete", deps.ClubTaskHandler.Delete)
		tasks.POST("/:id/delete", deps.ClubTaskHandler.Destroy)
	}

	fees := r.Group("/fees")
	{
		fees.GET("", deps.FeeStructureHandler.Index)
		fees.GET("/new", deps.FeeStructureHandler.New)
		fees.POST("", deps.FeeStructureHandler.Create)
		fees.GET("/:year", deps.FeeStructureHandler.Details)
		fees.GET("/:year/edit", deps.FeeStructureHandler.Edit)
		fees.POST("/:year/edit", deps.FeeStructureHandler.Update)
		fees.GET("/:year/delete", deps.FeeStructureHandler.Delete)
		fees.POST("/:year/delete", deps.FeeStructureHandler.Destroy)
	}

	memberships := r.Group("/memberships")
	{
		memberships.GET("", deps.MembershipHandler.Index)
		memberships.GET("/new", deps.MembershipHandler.New)
		memberships.POST("", deps.MembershipHandler.Create)
		memberships.GET("/:id", deps.MembershipHandler.Details)
		memberships.GET("/:id/edit", deps.MembershipHandler.Edit)
		memberships.POST("/:id/edit", deps.MembershipHandler.Update)
		memberships.GET("/:id/delete", deps.MembershipHandler.Delete)
		memberships.POST("/:id/delete", deps.MembershipHandler.Destroy)
	}
}
