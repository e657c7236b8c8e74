package appointment

import "time"

// SlotHalfWidth é a meia-largura da janela ocupada por um agendamento:
// [date - W, date + W]. O modelo não guarda duração por agendamento;
// a janela simétrica equivale ao menor slot reservável.
const SlotHalfWidth = 45 * time.Minute

// Window devolve a janela ocupada de um agendamento na data dada.
func Window(date time.Time) (start, end time.Time) {
	return date.Add(-SlotHalfWidth), date.Add(SlotHalfWidth)
}

// WindowsOverlap decide se as janelas ocupadas de dois agendamentos se
// cruzam. Janelas meio-abertas: encostar na borda (exatamente 2W de
// distância) não conta como conflito.
func WindowsOverlap(a, b time.Time) bool {
	aStart, aEnd := Window(a)
	bStart, bEnd := Window(b)
	return aStart.Before(bEnd) && bStart.Before(aEnd)
}

// ConflictBounds devolve o intervalo de datas cujas janelas cruzariam
// a janela da data proposta. Usado pela query de conflito.
func ConflictBounds(date time.Time) (lo, hi time.Time) {
	return date.Add(-2 * SlotHalfWidth), date.Add(2 * SlotHalfWidth)
}
