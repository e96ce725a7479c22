package server

import (
	"log"
	"net/http"

	"github.com/Scrimzay/icefall/internal/hex"
	"github.com/Scrimzay/icefall/internal/world"
	"github.com/gin-gonic/gin"
)

func SetupRouter(broadcaster *world.Broadcaster, gameWorld *world.World) *gin.Engine {
	r := gin.Default()

	r.GET("/board", boardHandler(gameWorld))
	r.GET("/layouts", layoutsHandler)
	r.GET("/play/:layout", playHandler(gameWorld, broadcaster))
	r.POST("/reset", resetHandler(gameWorld, broadcaster))
	r.POST("/strike", strikeHandler(gameWorld, broadcaster))
	r.GET("/tiles/:q/:r", inspectHandler(gameWorld))

	r.GET("/ws", HandleWebsocket(broadcaster, gameWorld))

	return r
}

type coordRequest struct {
	Q *int `json:"q" binding:"required"`
	R *int `json:"r" binding:"required"`
}

func (c coordRequest) coord() hex.Coord {
	return hex.Coord{Q: *c.Q, R: *c.R}
}

type tilePath struct {
	Q int `uri:"q"`
	R int `uri:"r"`
}

func boardHandler(gameWorld *world.World) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gameWorld.Snapshot())
	}
}

func layoutsHandler(c *gin.Context) {
	c.JSON(http.StatusOK, world.Layouts())
}

func playHandler(gameWorld *world.World, broadcaster *world.Broadcaster) gin.HandlerFunc {
	return func(c *gin.Context) {
		name := c.Param("layout")
		log.Printf("=== LOADING LAYOUT: %s ===", name)

		if err := gameWorld.InitMap(name); err != nil {
			log.Println("Layout init error:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		broadcaster.BroadcastBoard()
		c.JSON(http.StatusOK, gameWorld.Snapshot())
	}
}

func resetHandler(gameWorld *world.World, broadcaster *world.Broadcaster) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := gameWorld.Reset(); err != nil {
			log.Println("Reset error:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		broadcaster.BroadcastBoard()
		c.JSON(http.StatusOK, gameWorld.Snapshot())
	}
}

func strikeHandler(gameWorld *world.World, broadcaster *world.Broadcaster) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req coordRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		report := strike(gameWorld, broadcaster, req.coord())
		c.JSON(http.StatusOK, report)
	}
}

func inspectHandler(gameWorld *world.World) gin.HandlerFunc {
	return func(c *gin.Context) {
		var p tilePath
		if err := c.ShouldBindUri(&p); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		info, ok := gameWorld.Inspect(hex.Coord{Q: p.Q, R: p.R})
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "no tile at that coordinate"})
			return
		}
		c.JSON(http.StatusOK, info)
	}
}

// strike is shared by the HTTP and websocket paths.
func strike(gameWorld *world.World, broadcaster *world.Broadcaster, target hex.Coord) world.StrikeReport {
	report := gameWorld.Strike(target)
	if !report.Struck {
		return report
	}

	log.Printf("Strike (%d,%d): %d fell in %d passes, homeLost=%v", target.Q, target.R, len(report.Fallen), report.Passes, report.HomeLost)
	if report.Capped {
		log.Printf("Strike (%d,%d) hit the pass cap", target.Q, target.R)
	}
	broadcaster.BroadcastStrike(report)
	return report
}
