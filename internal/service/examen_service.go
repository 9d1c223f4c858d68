package service

import (
	"fmt"
	"math/rand"
	"sync"

	"github.com/yourusername/quizbank-api/internal/domain/entity"
	"github.com/yourusername/quizbank-api/internal/domain/repository"
	apperrors "github.com/yourusername/quizbank-api/internal/pkg/errors"
)

// ExamenService собирает экзамен из хранимых вопросов и ответов:
// три последовательные выборки (темы → вопросы → ответы), группировка
// ответов по вопросу и случайный порядок на обоих уровнях.
type ExamenService struct {
	temaRepo      repository.TemaRepository
	preguntaRepo  repository.PreguntaRepository
	respuestaRepo repository.RespuestaRepository

	// Источник случайности инжектируется при создании: в тестах —
	// фиксированный seed, в проде — время запуска. rand.Rand не
	// потокобезопасен, поэтому перестановки сериализуются мьютексом.
	mu  sync.Mutex
	rng *rand.Rand
}

// NewExamenService создает новый сервис сборки экзаменов
func NewExamenService(
	temaRepo repository.TemaRepository,
	preguntaRepo repository.PreguntaRepository,
	respuestaRepo repository.RespuestaRepository,
	rng *rand.Rand,
) *ExamenService {
	return &ExamenService{
		temaRepo:      temaRepo,
		preguntaRepo:  preguntaRepo,
		respuestaRepo: respuestaRepo,
		rng:           rng,
	}
}

// shuffle выполняет перестановку Фишера–Йетса под мьютексом
func (s *ExamenService) shuffle(n int, swap func(i, j int)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rng.Shuffle(n, swap)
}

// validateInput проверяет параметры запроса до обращения к базе
func validateExamenInput(nombresTemas []string, dificultad entity.Dificultad, limite int) error {
	if len(nombresTemas) == 0 {
		return fmt.Errorf("%w: 'nombresTemas' no puede estar vacío", apperrors.ErrValidation)
	}
	if !dificultad.Valida() {
		return fmt.Errorf("%w: dificultad desconocida %q", apperrors.ErrValidation, dificultad)
	}
	if limite <= 0 {
		return fmt.Errorf("%w: 'limite' debe ser un entero positivo", apperrors.ErrValidation)
	}
	return nil
}

// Armar собирает экзамен по именам тем, сложности и лимиту вопросов.
//
// Имена тем без совпадений молча отбрасываются; если не совпало ни одно,
// результат — пустой экзамен, а не ошибка. Вопрос без ответов попадает
// в экзамен с пустым списком respuestas. Любая ошибка выборки прерывает
// сборку целиком: частичный экзамен не возвращается.
func (s *ExamenService) Armar(nombresTemas []string, dificultad entity.Dificultad, limite int) (*entity.Examen, error) {
	if err := validateExamenInput(nombresTemas, dificultad, limite); err != nil {
		return nil, err
	}

	// Шаг 1: имена тем → ID
	temaIDs, err := s.temaRepo.GetIDsByNombres(nombresTemas)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve temas: %w", err)
	}
	if len(temaIDs) == 0 {
		return &entity.Examen{Preguntas: []entity.PreguntaExamen{}}, nil
	}

	// Шаг 2: вопросы по темам и сложности, стабильный порядок из базы
	preguntas, err := s.preguntaRepo.GetByTemasAndDificultad(temaIDs, dificultad)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch preguntas: %w", err)
	}

	// Шаг 3: перемешиваем и только потом обрезаем до лимита, чтобы
	// выборка из полного множества оставалась равномерной
	s.shuffle(len(preguntas), func(i, j int) {
		preguntas[i], preguntas[j] = preguntas[j], preguntas[i]
	})
	if len(preguntas) > limite {
		preguntas = preguntas[:limite]
	}
	if len(preguntas) == 0 {
		return &entity.Examen{Preguntas: []entity.PreguntaExamen{}}, nil
	}

	// Шаг 4: все ответы выбранных вопросов, тоже в случайном порядке
	preguntaIDs := make([]uint, len(preguntas))
	for i, p := range preguntas {
		preguntaIDs[i] = p.IDPregunta
	}
	respuestas, err := s.respuestaRepo.GetByPreguntaIDs(preguntaIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch respuestas: %w", err)
	}
	s.shuffle(len(respuestas), func(i, j int) {
		respuestas[i], respuestas[j] = respuestas[j], respuestas[i]
	})

	// Шаг 5: группируем ответы по вопросу за один проход
	porPregunta := make(map[uint][]entity.Respuesta, len(preguntas))
	for _, r := range respuestas {
		porPregunta[r.IDPregunta] = append(porPregunta[r.IDPregunta], r)
	}

	// Шаг 6: собираем экзамен в порядке перемешанных вопросов
	resultado := make([]entity.PreguntaExamen, len(preguntas))
	for i, p := range preguntas {
		grupo := porPregunta[p.IDPregunta]
		if grupo == nil {
			grupo = []entity.Respuesta{}
		}
		resultado[i] = entity.PreguntaExamen{
			IDPregunta: p.IDPregunta,
			Pregunta:   p.Pregunta,
			Respuestas: grupo,
		}
	}

	return &entity.Examen{Preguntas: resultado}, nil
}
