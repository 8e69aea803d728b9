package slot

type DepositRequest struct {
	Amount int `json:"amount"` // Сумма депозита (>0)
}

type DepositResponse struct {
	Token     string `json:"token"`      // Bearer токен сессии
	SessionID string `json:"session_id"` // ID сессии
	Balance   int    `json:"balance"`    // Начальный баланс
}

type SpinRequest struct {
	Bet   int `json:"bet"`   // Ставка на линию
	Lines int `json:"lines"` // Количество линий
}

type SpinResponse struct {
	Grid         [][]string `json:"grid"`          // Барабаны, строка 0 сверху
	Rows         []string   `json:"rows"`          // Строки поля через " | "
	Winnings     int        `json:"winnings"`      // Выигрыш за спин
	WinningLines []int      `json:"winning_lines"` // Выигравшие линии, с 1
	TotalBet     int        `json:"total_bet"`     // Ставка на линию * линии
	Balance      int        `json:"balance"`       // Баланс после спина
	GameOver     bool       `json:"game_over"`     // Баланс исчерпан
}

type BalanceResponse struct {
	Balance int `json:"balance"`
}

type Symbol struct {
	ID        string `json:"id"`
	Frequency int    `json:"frequency"`
	Payout    int    `json:"payout"`
}

type MachineResponse struct {
	Rows     int      `json:"rows"`
	Reels    int      `json:"reels"`
	MaxLines int      `json:"max_lines"`
	MinBet   int      `json:"min_bet"`
	MaxBet   int      `json:"max_bet"`
	Symbols  []Symbol `json:"symbols"`
}

type StatsResponse struct {
	TotalSpins   int    `json:"total_spins"`
	WinSpins     int    `json:"win_spins"`
	WinningLines int    `json:"winning_lines"`
	TotalBet     string `json:"total_bet"`
	TotalPayout  string `json:"total_payout"`
	RTP          string `json:"rtp"`        // Процент
	WindowRTP    string `json:"window_rtp"` // Процент по окну последних спинов
	WindowSize   int    `json:"window_size"`
}
