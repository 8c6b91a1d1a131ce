package main

import (
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ngmaloney/charter-terminal/internal/catalog"
	"github.com/ngmaloney/charter-terminal/internal/derive"
	"github.com/ngmaloney/charter-terminal/internal/sheets"
	"github.com/ngmaloney/charter-terminal/internal/ui"
)

// This demo runs the UI on built-in data instead of the published sheets
func main() {
	now := time.Now()
	day := func(offset int) string {
		return derive.FormatDate(now.AddDate(0, 0, offset))
	}

	source := &sheets.StaticSource{
		BoatRows: [][]string{
			{"shipname", "url", "phonenumber", "address", "departure_port", "anglers_follower", "external_url", "payment_method", "booking_method", "calendar_id", "calendar_url", "calendar_integration_status", "review", "visit_count", "memo"},
			{"第八海王丸", "https://example.com/kaio", "046-000-0001", "神奈川県三浦市三崎町城ヶ島", "三崎港", "1200", "", "現金", "電話", "kaio@example.com", "", "active", "4.6", "12", "早朝便あり"},
			{"光栄丸", "https://example.com/koei", "0470-00-0002", "千葉県鴨川市天津", "鴨川港", "800", "", "現金・カード", "Web", "", "", "inactive", "4.2", "5", ""},
			{"大洋丸", "", "0557-00-0003", "静岡県伊東市新井", "伊東港", "300", "", "現金", "LINE", "", "", "", "", "", "SLJ専門"},
			{"勝丸", "https://example.com/katsu", "046-000-0004", "神奈川県横須賀市長井", "長井港", "2100", "", "カード", "Web", "katsu@example.com", "", "active", "4.8", "30", ""},
		},
		ListingRows: [][]string{
			{"shipname", "date", "category", "status", "capacity", "note"},
			{"第八海王丸", day(1), "ジギング", "open", "4", "ブリ狙い"},
			{"光栄丸", day(1), "タイラバ", "full", "", ""},
			{"大洋丸", day(1), "SLJ", "open", "2", ""},
			{"勝丸", day(2), "キャスティング", "close", "", "荒天のため"},
			{"第八海王丸", day(2), "ジギング,SLJ", "open", "6", ""},
			{"光栄丸", day(3), "その他", "open", "", "五目"},
			{"勝丸", day(4), "ジギング", "full", "", ""},
			{"大洋丸", day(5), "SLJ", "", "", "日程調整中"},
			{"未登録丸", day(6), "タイラバ", "open", "3", ""},
			{"第八海王丸", day(-1), "ジギング", "open", "5", ""},
		},
	}

	p := tea.NewProgram(ui.NewModel(catalog.NewLoader(source)), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Printf("Error running application: %v\n", err)
		os.Exit(1)
	}
}
