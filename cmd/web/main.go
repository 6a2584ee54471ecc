// @title           TalentPool API
// @version         1.0
// @description     API job board: вакансии (annonces), кандидатуры и статистика.
// @contact.name    TalentPool
// @contact.email   support@talentpool.local
// @license.name    MIT
// @license.url     https://opensource.org/licenses/MIT
// @host            localhost:8000
// @BasePath        /api/v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

package main

import "jobboard_backend/internal/app"

func main() {
	app.Run()
}
