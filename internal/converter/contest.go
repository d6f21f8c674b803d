package converter

import (
	"starspin_backend/internal/api/dto/contest"
	"starspin_backend/internal/model"
)

func ToContestResponse(c model.Contest) contest.ContestResponse {
	resp := contest.ContestResponse{
		ID:               c.ID,
		Title:            c.Title,
		Description:      c.Description,
		StartDate:        c.StartDate,
		EndDate:          c.EndDate,
		IsActive:         c.IsActive,
		WinnersAnnounced: c.WinnersAnnounced,
	}
	if c.WinnersAnnounced {
		resp.Winners = []int64{c.Winner1, c.Winner2, c.Winner3}
	}
	return resp
}

func ToParticipantResponse(p model.ContestParticipant) contest.ParticipantResponse {
	return contest.ParticipantResponse{
		TelegramID:         p.TelegramID,
		ReferralsCompleted: p.ReferralsCompleted,
		ContestNumber:      p.ContestNumber,
		IsQualified:        p.IsQualified,
	}
}

func ToStandingsResponse(list []model.ContestParticipant) []contest.ParticipantResponse {
	result := make([]contest.ParticipantResponse, len(list))
	for i, p := range list {
		result[i] = ToParticipantResponse(p)
	}
	return result
}
