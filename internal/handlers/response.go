package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Response messages. Clients of the original service match on these.
const (
	msgInvalidBody    = "Corpo da requisição inválido."
	msgInternalError  = "Erro interno do servidor."
	msgRouteNotFound  = "Rota não encontrada."
	msgMethodNotAllow = "Método não permitido."
	msgUserRegistered = "Usuário cadastrado com sucesso!"
	msgEmailTaken     = "Email de usuário já cadastrado."
	msgNoUsers        = "Não foi localizado nenhum usuário cadastrado"
	msgMissingEmail   = "Necessário informar um email. O campo não deve estar vazio."
	msgMissingPass    = "Necessário informar sua senha."
	msgLoginNotFound  = "Usuário não localizado"
	msgWrongPassword  = "Senha inválida."
	msgUserDeleted    = "Usuário excluido com sucesso."
	msgUserIDNotFound = "O id do usuário não foi localizado"

	msgErrandCreated     = "Recado criado com sucesso."
	msgOwnerNotFound     = "Usuário não localizado."
	msgTitleRequired     = "O título do recado deve ser informado."
	msgErrandUpdated     = "Recado atualizado com sucesso."
	msgErrandNotFound    = "Id de recado informado não foi localizado."
	msgUpdateTitleNeeded = "O campo título deve estar preenchido."
	msgErrandDeleted     = "Recado excluído com sucesso."
)

// message writes the {"message": ...} body used by every endpoint.
func message(c *fiber.Ctx, status int, msg string) error {
	return c.Status(status).JSON(fiber.Map{
		"message": msg,
	})
}

// parseBody decodes a JSON body into out. An empty or non-JSON body leaves
// out zeroed, so missing fields surface as the endpoint's own validation
// errors.
func parseBody(c *fiber.Ctx, out any) error {
	if len(c.Body()) == 0 || !c.Is("json") {
		return nil
	}
	return c.BodyParser(out)
}

// ErrorHandler renders errors that handlers did not map themselves.
// Fiber errors keep their status; anything else is a 500.
func ErrorHandler(logger *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		var fe *fiber.Error
		if errors.As(err, &fe) {
			switch fe.Code {
			case fiber.StatusNotFound:
				return message(c, fe.Code, msgRouteNotFound)
			case fiber.StatusMethodNotAllowed:
				return message(c, fe.Code, msgMethodNotAllow)
			}
			return message(c, fe.Code, fe.Message)
		}

		logger.Error("unhandled request error",
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.Error(err),
		)
		return message(c, fiber.StatusInternalServerError, msgInternalError)
	}
}
