package httputil

import "github.com/gin-gonic/gin"

// WriteError はProblemDetailにリクエストパスとトレースIDを付与して書き込む。
func WriteError(c *gin.Context, problem *ProblemDetail) {
	c.Header("Content-Type", ContentType)
	c.JSON(problem.Status, fromContext(c, problem))
}

// AbortWithError はWriteErrorと同様に書き込み、以降のハンドラを中断する。
func AbortWithError(c *gin.Context, problem *ProblemDetail) {
	c.Header("Content-Type", ContentType)
	c.AbortWithStatusJSON(problem.Status, fromContext(c, problem))
}

// TraceID はTraceIDMiddlewareが設定したトレースIDを返す。
// 未設定の場合は空文字列を返す。
func TraceID(c *gin.Context) string {
	return c.GetString(TraceIDKey)
}

func fromContext(c *gin.Context, problem *ProblemDetail) *ProblemDetail {
	var path string
	if c.Request != nil {
		path = c.Request.URL.Path
	}
	return problem.withRequest(path, TraceID(c))
}
