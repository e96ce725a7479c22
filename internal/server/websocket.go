package server

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/Scrimzay/icefall/internal/hex"
	"github.com/Scrimzay/icefall/internal/world"
	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

type StrikeAction struct {
	Action string `json:"action"`
	Q      int    `json:"q"`
	R      int    `json:"r"`
}

type InspectAction struct {
	Action string `json:"action"`
	Q      int    `json:"q"`
	R      int    `json:"r"`
}

type PlayAction struct {
	Action string `json:"action"`
	Layout string `json:"layout"`
}

func HandleWebsocket(broadcaster *world.Broadcaster, gameWorld *world.World) gin.HandlerFunc {
	return func(c *gin.Context) {
		conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			log.Println("WS upgrade error:", err)
			return
		}

		broadcaster.Register(conn)

		for {
			msgType, msg, err := conn.ReadMessage()
			if err != nil {
				broadcaster.Unregister(conn)
				break
			}
			if msgType != websocket.TextMessage {
				continue
			}

			var base struct {
				Action string `json:"action"`
			}
			if err := json.Unmarshal(msg, &base); err != nil {
				log.Println("JSON parse error:", err)
				continue
			}

			switch base.Action {
			case "strike":
				var s StrikeAction
				if err := json.Unmarshal(msg, &s); err != nil {
					log.Println("Strike parse error:", err)
					continue
				}
				report := strike(gameWorld, broadcaster, hex.Coord{Q: s.Q, R: s.R})
				if !report.Struck {
					// invalid move, only the sender needs to know
					if err := broadcaster.SendTo(conn, world.Message{Action: "fell", Strike: &report}); err != nil {
						log.Println("Strike reply error:", err)
					}
				}

			case "inspect":
				var in InspectAction
				if err := json.Unmarshal(msg, &in); err != nil {
					log.Println("Inspect parse error:", err)
					continue
				}
				reply := world.Message{Action: "inspect_response"}
				if info, ok := gameWorld.Inspect(hex.Coord{Q: in.Q, R: in.R}); ok {
					reply.Tile = &info
				} else {
					reply.Error = "no tile at that coordinate"
				}
				if err := broadcaster.SendTo(conn, reply); err != nil {
					log.Println("Inspect send error:", err)
				}

			case "play":
				var p PlayAction
				if err := json.Unmarshal(msg, &p); err != nil {
					log.Println("Play parse error:", err)
					continue
				}
				if err := gameWorld.InitMap(p.Layout); err != nil {
					log.Println("Layout init error:", err)
					if err := broadcaster.SendTo(conn, world.Message{Action: "error", Error: err.Error()}); err != nil {
						log.Println("Error reply send error:", err)
					}
					continue
				}
				broadcaster.BroadcastBoard()

			case "reset":
				if err := gameWorld.Reset(); err != nil {
					log.Println("Reset error:", err)
					if err := broadcaster.SendTo(conn, world.Message{Action: "error", Error: err.Error()}); err != nil {
						log.Println("Error reply send error:", err)
					}
					continue
				}
				broadcaster.BroadcastBoard()
			}
		}
	}
}
