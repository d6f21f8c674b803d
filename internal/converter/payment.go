package converter

import (
	"starspin_backend/internal/api/dto/payment"
	"starspin_backend/internal/model"
	"sort"
)

func ToDepositResponse(p model.Player) payment.DepositResponse {
	return payment.DepositResponse{
		Balance:        p.Stars,
		TotalDeposited: p.TotalDeposited,
		Rank:           p.Rank(),
	}
}

func ToPackagesResponse(packages map[int]int) []payment.PackageEntry {
	result := make([]payment.PackageEntry, 0, len(packages))
	for price, stars := range packages {
		result = append(result, payment.PackageEntry{Price: price, Stars: stars})
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Price < result[j].Price })
	return result
}
