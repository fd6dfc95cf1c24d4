package router

import "github.com/gin-gonic/gin"

func (r *Router) teacherRoutes(api *gin.RouterGroup) {
	teachers := api.Group("/teachers")
	{
		// All directory routes require JWT authentication
		teachers.Use(r.jwtMw.RequireAuth())
		{
			// List every teacher, newest first
			teachers.GET("", r.teacherHandler.List)

			// Substring search across name, email, university, department
			teachers.GET("/search", r.teacherHandler.Search)

			// Get teacher by ID
			teachers.GET("/:id", r.teacherHandler.Get)

			// Overwrite profile fields
			teachers.PUT("/:id", r.teacherHandler.Update)

			// Disable the owning user account
			teachers.DELETE("/:id", r.teacherHandler.Deactivate)
		}
	}
}
