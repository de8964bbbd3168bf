package mailer

import "fmt"

// Mail bodies ship in Portuguese, the product's language.

const signature = `<p>
<b>Atenciosamente,</b><br>
<b>Equipa de suporte Kuvica</b><br>
<b>geral@kuvica.com</b>
</p>`

// ActivationEmail carries the 6-digit code a new account must submit
// before it can log in.
func ActivationEmail(name, code string) (subject, html string) {
	subject = "Ativação da conta"
	html = fmt.Sprintf(`Olá <b>%s</b>,
<p>Bem-vindo(a) à Kuvica! Estamos muito felizes em tê-lo(a) connosco.</p>
<p>Para ativar sua conta, insira o código abaixo no aplicativo:</p>
<h2>%s</h2>
<p>Se você não solicitou este código, por favor, ignore este email.</p>
%s`, name, code, signature)
	return subject, html
}

func PasswordChangedEmail(name string) (subject, html string) {
	subject = "Palavra-passe alterada"
	html = fmt.Sprintf(`Olá <b>%s</b>,
<p>A palavra-passe da sua conta foi alterada.</p>
<p>Se não foi você, entre em contato com o suporte imediatamente.</p>
%s`, name, signature)
	return subject, html
}

func ServiceRequestEmail(workerName, clientName string) (subject, html string) {
	subject = "Novo pedido de serviço"
	html = fmt.Sprintf(`Olá <b>%s</b>,
<p><b>%s</b> enviou um pedido de serviço para você.</p>
<p>Acesse a plataforma para aceitar ou rejeitar o pedido.</p>
%s`, workerName, clientName, signature)
	return subject, html
}

// ServiceResponseEmail tells the client the worker's decision; the
// decision outcome is embedded in the body.
func ServiceResponseEmail(clientName, workerName, decision string) (subject, html string) {
	subject = "Resposta ao seu pedido de serviço"
	html = fmt.Sprintf(`Olá <b>%s</b>,
<p>O seu pedido de serviço foi <b>%s</b> por <b>%s</b>.</p>
<p>Acesse a plataforma para mais detalhes.</p>
%s`, clientName, decision, workerName, signature)
	return subject, html
}

func RatingEmail(workerName, clientName string) (subject, html string) {
	subject = "Nova avaliação recebida"
	html = fmt.Sprintf(`Olá <b>%s</b>,
<p><b>%s</b> deixou uma avaliação sobre os seus serviços.</p>
<p>Acesse a plataforma para conferir a avaliação.</p>
%s`, workerName, clientName, signature)
	return subject, html
}
