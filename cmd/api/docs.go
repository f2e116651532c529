package main

// @title           Parceiros API
// @version         1.0
// @description     API de cadastro de parceiros (indústrias e distribuidores) com provisionamento de usuários na API Embedded

// @contact.name   Suporte
// @contact.email  suporte@parceiros.com.br

// @host      localhost:8080
// @BasePath  /api/v1

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Cabeçalho de autenticação JWT usando o esquema Bearer. Exemplo: "Bearer {token}"
