// @title           NameDesk API
// @version         1.0
// @description     Back-office API for the NameDesk baby naming service.
// @host            localhost:4000
// @BasePath        /api/v1

package main

import "namedesk_backend/internal/app"

func main() {
	app.Run()
}
