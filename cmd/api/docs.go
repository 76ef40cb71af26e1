package main

// @title           POS Interno API
// @version         1.0
// @description     API interna de ponto de venda e retaguarda de estoque

// @host      localhost:8080
// @BasePath  /api/v1

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Cabeçalho de autenticação com token de sessão opaco. Exemplo: "Bearer {token}"
