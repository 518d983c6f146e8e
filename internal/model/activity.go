// Package model содержит доменные структуры кружков и учителей.
package model

// Activity описывает внеурочный кружок: расписание, лимит мест и упорядоченный список участников.
// Имя кружка служит ключом реестра и не сериализуется в теле записи.
type Activity struct {
	Name            string   `json:"-"`
	Description     string   `json:"description"`
	Schedule        string   `json:"schedule"`
	MaxParticipants int      `json:"max_participants"`
	Participants    []string `json:"participants"`
}

// IsFull сообщает, заняты ли все места.
func (a Activity) IsFull() bool {
	return len(a.Participants) >= a.MaxParticipants
}

// HasParticipant проверяет, записан ли email в кружок.
func (a Activity) HasParticipant(email string) bool {
	for _, p := range a.Participants {
		if p == email {
			return true
		}
	}
	return false
}

// Clone возвращает копию кружка с собственным слайсом участников.
func (a Activity) Clone() Activity {
	c := a
	c.Participants = make([]string, len(a.Participants))
	copy(c.Participants, a.Participants)
	return c
}
