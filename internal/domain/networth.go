package domain

// NetWorth сумма балансов счетов пользователя по валютам
type NetWorth struct {
	UserID UserID               `json:"user_id"`
	Totals map[Currency]float64 `json:"totals"`
}

// NewNetWorth суммирует балансы счетов по валютам
func NewNetWorth(userID UserID, accounts []*Account) NetWorth {
	sums := make(map[Currency]Money)
	for _, a := range accounts {
		current, ok := sums[a.Currency]
		if !ok {
			current = ZeroMoney()
		}
		sums[a.Currency] = Money{amount: current.amount.Add(a.Balance.amount)}
	}

	totals := make(map[Currency]float64, len(sums))
	for currency, sum := range sums {
		totals[currency] = sum.Float64()
	}
	return NetWorth{UserID: userID, Totals: totals}
}

// CashFlow доходы и расходы пользователя за интервал
type CashFlow struct {
	Incomes  float64 `json:"incomes"`
	Expenses float64 `json:"expenses"`
}
